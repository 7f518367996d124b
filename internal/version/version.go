package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo contains build and runtime information.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`

	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`

	BuildDeps []Module `json:"build_deps"`
}

// Module represents a Go module dependency.
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// GetBuildInfo returns build information for the running binary.
func GetBuildInfo() BuildInfo {
	var buildDeps []Module
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range buildInfo.Deps {
			buildDeps = append(buildDeps, Module{
				Path:    dep.Path,
				Version: dep.Version,
			})
		}
	}

	return BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		BuildDeps: buildDeps,
	}
}

// FullVersion returns a formatted string with complete version information.
func FullVersion() string {
	info := GetBuildInfo()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("dirtree %s\n", info.Version))
	b.WriteString(fmt.Sprintf("  Build Date: %s\n", info.BuildDate))
	b.WriteString(fmt.Sprintf("  Commit:     %s\n", info.GitCommit))
	b.WriteString(fmt.Sprintf("  Go Version: %s\n", info.GoVersion))
	b.WriteString(fmt.Sprintf("  Platform:   %s\n", info.Platform))

	if len(info.BuildDeps) > 0 {
		b.WriteString("  Dependencies:\n")
		limit := len(info.BuildDeps)
		if limit > 5 {
			limit = 5
		}
		for _, dep := range info.BuildDeps[:limit] {
			b.WriteString(fmt.Sprintf("    - %s@%s\n", dep.Path, dep.Version))
		}
		if len(info.BuildDeps) > 5 {
			b.WriteString("    ... and more\n")
		}
	}

	return b.String()
}
