package app

import (
	"github.com/maxiaolu1981/cretem/usercrud/pkg/cliflag"
)

// CliOptions 应用的命令行选项。
type CliOptions interface {
	Flags() cliflag.NamedFlagSets
	Validate() []error
}

// CompleteableOptions 校验前补全选项。
type CompleteableOptions interface {
	Complete() error
}

// PrintableOptions 启动时打印选项。
type PrintableOptions interface {
	String() string
}
