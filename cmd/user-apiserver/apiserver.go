// user-apiserver 提供用户记录的增删改查接口。
package main

import (
	"os"
	"runtime"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver"
)

func main() {
	if len(os.Getenv("GOMAXPROCS")) == 0 {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	apiserver.NewApp("user-apiserver").Run()
}
