// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
	"sync"
)

// Set at link time:
//
//	go build -ldflags "-X r2/misc.version=1.2.3 -X r2/misc.gitHash=abcdef0"
var (
	appName = "r2"
	version = "dev"
	gitHash = ""
)

var vcsRevision = sync.OnceValue(func() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
})

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit hash program was built from, falling back to VCS
// information embedded by the go tool.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	return vcsRevision()
}
