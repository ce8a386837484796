// Package version holds build-time version information set via -ldflags.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info returns all version information as a struct
func Info() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// String formats the info for logs and CLI output, e.g. "1.2.0 (abc1234, 2026-01-02T15:04:05Z)".
func (v VersionInfo) String() string {
	return v.Version + " (" + v.GitCommit + ", " + v.BuildTime + ")"
}
