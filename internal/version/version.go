package version

import "fmt"

// Set at build time with -ldflags "-X addressbook/internal/version.Version=...".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func Get() string {
	return Version
}

type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("addressbook %s (commit %s, built %s)", b.Version, b.GitCommit, b.BuildTime)
}
