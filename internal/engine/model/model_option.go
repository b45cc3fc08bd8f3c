package model

import "gorm.io/datatypes"

/**
 * @file: model_option.go
 * @description: process-wide key/value configuration storage
 */

type Option struct {
	BaseModel
	Key   string         `gorm:"column:option_key;uniqueIndex" json:"key"`
	Value datatypes.JSON `gorm:"column:option_value" json:"value"`
}

func (Option) TableName() string {
	return "t_option"
}
