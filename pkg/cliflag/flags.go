package cliflag

import (
	goflag "flag"
	"strings"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// WordSepNormalizeFunc 把参数名中的 "_" 换成 "-"。
func WordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}

	return pflag.NormalizedName(name)
}

// InitFlags 规范化参数名并合并标准库 flag。
func InitFlags(flags *pflag.FlagSet) {
	flags.SetNormalizeFunc(WordSepNormalizeFunc)
	flags.AddGoFlagSet(goflag.CommandLine)
}

// PrintFlags 以 debug 级别输出所有参数的值。
func PrintFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		log.Debugf("FLAG: --%s=%q", flag.Name, flag.Value)
	})
}
