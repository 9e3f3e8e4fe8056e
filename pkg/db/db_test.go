package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "mysql",
			opts: Options{Driver: DriverMySQL, Host: "127.0.0.1:3306", Username: "root", Password: "pw", Database: "test_db"},
			want: "root:pw@tcp(127.0.0.1:3306)/test_db?charset=utf8mb4&parseTime=true&loc=Local&timeout=10s",
		},
		{
			name: "sqlite",
			opts: Options{Driver: DriverSQLite, Database: "./test_db"},
			want: "./test_db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.DSN())
		})
	}
}

func TestNewSQLite(t *testing.T) {
	opts := &Options{Driver: DriverSQLite, Database: filepath.Join(t.TempDir(), "db.sqlite"), LogLevel: 1}
	gdb, err := New(opts)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(&Options{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestToGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, toGormLogLevel(0))
	assert.Equal(t, logger.Error, toGormLogLevel(1))
	assert.Equal(t, logger.Warn, toGormLogLevel(2))
	assert.Equal(t, logger.Info, toGormLogLevel(3))
	assert.Equal(t, logger.Info, toGormLogLevel(9))
}
