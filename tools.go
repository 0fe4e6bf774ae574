//go:build tools
// +build tools

// Package tools pins the development tools used by the Makefile and CI so
// their versions are tracked in go.mod. It is never compiled into setup-gh.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/goreleaser/goreleaser"
	_ "golang.org/x/tools/cmd/cover"
	_ "golang.org/x/tools/cmd/goimports"
)
