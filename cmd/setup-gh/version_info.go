package main

import (
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// initVersion uses the module version when installed with go install and no
// version was injected at link time.
func initVersion() {
	if version != defaultVersion {
		return
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return
	}

	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return
	}

	version = info.Main.Version
}
