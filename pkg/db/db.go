package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// 支持的数据库驱动。
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Options 建立 gorm 连接所需的参数。
type Options struct {
	Driver                string
	Host                  string // mysql: 127.0.0.1:3306
	Username              string
	Password              string
	Database              string // mysql 库名，sqlite 为文件路径
	MaxIdleConnections    int
	MaxOpenConnections    int
	MaxConnectionLifeTime time.Duration
	LogLevel              int
	SlowQueryThreshold    time.Duration
}

// DSN 生成驱动对应的连接串。
func (o *Options) DSN() string {
	switch o.Driver {
	case DriverMySQL:
		return fmt.Sprintf(`%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=%t&loc=%s&timeout=10s`,
			o.Username,
			o.Password,
			o.Host,
			o.Database,
			true,
			"Local")
	default:
		return o.Database
	}
}

func (o *Options) dialector() (gorm.Dialector, error) {
	switch o.Driver {
	case DriverMySQL:
		return mysql.Open(o.DSN()), nil
	case DriverSQLite, "":
		return sqlite.Open(o.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", o.Driver)
	}
}

// New 打开数据库并配置连接池，连接不可用时返回错误。
func New(opts *Options) (*gorm.DB, error) {
	setDefaultOptions(opts)

	dialector, err := opts.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   newGormLogger(opts),
		DisableForeignKeyConstraintWhenMigrating: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(opts.MaxOpenConnections)
	sqlDB.SetConnMaxLifetime(opts.MaxConnectionLifeTime)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConnections)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Infof("数据库连接池已初始化: driver=%s MaxOpenConns=%d MaxIdleConns=%d ConnMaxLifetime=%v",
		opts.Driver, opts.MaxOpenConnections, opts.MaxIdleConnections, opts.MaxConnectionLifeTime)

	return db, nil
}

func setDefaultOptions(opts *Options) {
	if opts.Driver == "" {
		opts.Driver = DriverSQLite
	}
	if opts.MaxOpenConnections <= 0 {
		opts.MaxOpenConnections = 100
	}
	if opts.MaxIdleConnections <= 0 {
		opts.MaxIdleConnections = 10
	}
	if opts.MaxConnectionLifeTime <= 0 {
		opts.MaxConnectionLifeTime = 10 * time.Second
	}
	// sqlite 单写者，多个连接只会互相等锁。
	if opts.Driver == DriverSQLite {
		opts.MaxOpenConnections = 1
		opts.MaxIdleConnections = 1
	}
}
