package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlagName = "config"

func (a *App) addConfigFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&a.cfgFile, configFlagName, "c", a.cfgFile,
		"从指定的文件读取配置，支持 JSON、TOML、YAML、HCL 或 Java properties 格式。")

	a.viper.AutomaticEnv()
	a.viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(a.basename), "-", "_"))
	a.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// loadConfig 指定了 --config 时文件必须可读；否则按默认路径查找，找不到时忽略。
func (a *App) loadConfig() error {
	if a.cfgFile != "" {
		a.viper.SetConfigFile(a.cfgFile)
	} else {
		a.viper.AddConfigPath(".")

		if names := strings.Split(a.basename, "-"); len(names) > 1 {
			if home, err := os.UserHomeDir(); err == nil {
				a.viper.AddConfigPath(filepath.Join(home, "."+names[0]))
			}
			a.viper.AddConfigPath(filepath.Join("/etc", names[0]))
		}

		a.viper.SetConfigName(a.basename)
	}

	if err := a.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read configuration file(%s): %w", a.cfgFile, err)
	}

	return nil
}

func (a *App) printConfig(w io.Writer) {
	keys := a.viper.AllKeys()
	if len(keys) == 0 {
		return
	}

	fmt.Fprintf(w, "%v Configuration items:\n", progressMessage)
	table := uitable.New()
	table.Separator = " "
	table.MaxColWidth = 80
	table.RightAlign(0)

	for _, k := range keys {
		v := a.viper.Get(k)
		if strings.Contains(k, "password") {
			v = "******"
		}
		table.AddRow(fmt.Sprintf("%s:", k), v)
	}

	fmt.Fprintf(w, "%v\n", table)
}
