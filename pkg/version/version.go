package version

// Version is set at build time via -ldflags.
var Version = "dev"

type Info struct {
	Version string `json:"version"`
}

func GetVersion() Info {
	return Info{Version: Version}
}
