package options

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/db"
)

// DatabaseOptions 持久化存储的连接参数。
type DatabaseOptions struct {
	Driver                string        `json:"driver"                             mapstructure:"driver"`
	Host                  string        `json:"host,omitempty"                     mapstructure:"host"`
	Username              string        `json:"username,omitempty"                 mapstructure:"username"`
	Password              string        `json:"-"                                  mapstructure:"password"`
	Database              string        `json:"database"                           mapstructure:"database"`
	MaxIdleConnections    int           `json:"max-idle-connections,omitempty"     mapstructure:"max-idle-connections"`
	MaxOpenConnections    int           `json:"max-open-connections,omitempty"     mapstructure:"max-open-connections"`
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time,omitempty" mapstructure:"max-connection-life-time"`
	LogLevel              int           `json:"log-level"                          mapstructure:"log-level"`
	SlowQueryThreshold    time.Duration `json:"slow-query-threshold"               mapstructure:"slow-query-threshold"`
}

// NewDatabaseOptions 默认使用当前目录下的 sqlite 文件 test_db。
func NewDatabaseOptions() *DatabaseOptions {
	return &DatabaseOptions{
		Driver:                db.DriverSQLite,
		Host:                  "127.0.0.1:3306",
		Username:              "root",
		Password:              "",
		Database:              "test_db",
		MaxIdleConnections:    10,
		MaxOpenConnections:    100,
		MaxConnectionLifeTime: 10 * time.Second,
		LogLevel:              1,
		SlowQueryThreshold:    200 * time.Millisecond,
	}
}

// Validate 校验驱动名和连接参数。
func (o *DatabaseOptions) Validate() []error {
	errs := []error{}

	switch o.Driver {
	case db.DriverSQLite:
	case db.DriverMySQL:
		if o.Host == "" {
			errs = append(errs, fmt.Errorf("--db.host 不能为空（driver=mysql）"))
		}
		if o.Username == "" {
			errs = append(errs, fmt.Errorf("--db.username 不能为空（driver=mysql）"))
		}
	default:
		errs = append(errs, fmt.Errorf("--db.driver %q 无效，支持：sqlite、mysql", o.Driver))
	}

	if o.Database == "" {
		errs = append(errs, fmt.Errorf("--db.database 不能为空"))
	}

	if o.MaxIdleConnections < 0 || o.MaxOpenConnections < 0 {
		errs = append(errs, fmt.Errorf("连接池大小不能为负数"))
	}

	return errs
}

// AddFlags 绑定 db.* 参数。
func (o *DatabaseOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Driver, "db.driver", o.Driver, ""+
		"数据库驱动，支持 sqlite、mysql。")

	fs.StringVar(&o.Host, "db.host", o.Host, ""+
		"MySQL 服务地址（host:port），sqlite 时忽略。")

	fs.StringVar(&o.Username, "db.username", o.Username, ""+
		"访问 MySQL 的用户名。")

	fs.StringVar(&o.Password, "db.password", o.Password, ""+
		"访问 MySQL 的密码，应与用户名配合使用。")

	fs.StringVar(&o.Database, "db.database", o.Database, ""+
		"MySQL 数据库名；sqlite 时为数据库文件路径。")

	fs.IntVar(&o.MaxIdleConnections, "db.max-idle-connections", o.MaxIdleConnections, ""+
		"最大空闲连接数。")

	fs.IntVar(&o.MaxOpenConnections, "db.max-open-connections", o.MaxOpenConnections, ""+
		"最大打开连接数。")

	fs.DurationVar(&o.MaxConnectionLifeTime, "db.max-connection-life-time", o.MaxConnectionLifeTime, ""+
		"连接最大生命周期。")

	fs.IntVar(&o.LogLevel, "db.log-mode", o.LogLevel, ""+
		"gorm 日志级别：0 静默，1 错误，2 警告，其余为全部。")

	fs.DurationVar(&o.SlowQueryThreshold, "db.slow-query-threshold", o.SlowQueryThreshold, ""+
		"超过该耗时的 SQL 以警告级别记录。")
}

// ToDBOptions 转换为 pkg/db 的连接参数。
func (o *DatabaseOptions) ToDBOptions() *db.Options {
	return &db.Options{
		Driver:                o.Driver,
		Host:                  o.Host,
		Username:              o.Username,
		Password:              o.Password,
		Database:              o.Database,
		MaxIdleConnections:    o.MaxIdleConnections,
		MaxOpenConnections:    o.MaxOpenConnections,
		MaxConnectionLifeTime: o.MaxConnectionLifeTime,
		LogLevel:              o.LogLevel,
		SlowQueryThreshold:    o.SlowQueryThreshold,
	}
}
