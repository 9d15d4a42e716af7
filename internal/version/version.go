// internal/version/version.go

// Package version holds the release string, overridable at link time:
//
//	go build -ldflags "-X dnadotplot/internal/version.Version=1.2.3"
package version

var Version = "0.1.0"
