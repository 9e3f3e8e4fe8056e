package app

import (
	"fmt"
	"runtime"
)

// Version 构建时通过 -ldflags "-X .../pkg/app.Version=v1.2.3" 注入。
var Version = "v0.0.0-dev"

func versionString(name string) string {
	return fmt.Sprintf("%s %s (%s, %s/%s)", name, Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
