// Package version reports build information for the gocmd binary.
//
// Version, commit, branch and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/gocmd/version.Version=1.2.0 \
//	    -X github.com/kbukum/gocmd/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Missing values fall back to the VCS stamp embedded by the Go toolchain.
package version
