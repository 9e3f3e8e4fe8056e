package sqldb

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/marmotedu/errors"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
)

// MySQL 连接类错误号。
var unavailableMySQLErrors = map[uint16]struct{}{
	1040: {}, // Too many connections
	1053: {}, // Server shutdown in progress
	2002: {}, // Can't connect through socket
	2003: {}, // Can't connect to server
	2006: {}, // Server has gone away
	2013: {}, // Lost connection during query
}

var unavailablePatterns = []string{
	"database is closed",
	"connection refused",
	"no such host",
	"i/o timeout",
	"broken pipe",
	"unable to open database file",
}

// classify 把驱动错误转换为带错误码的错误：连接类故障为 ErrStoreUnavailable，其余为 ErrDatabase。
func classify(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)
	if isUnavailable(err) {
		return errors.WithCode(code.ErrStoreUnavailable, "%s: %s", msg, err.Error())
	}

	return errors.WithCode(code.ErrDatabase, "%s: %s", msg, err.Error())
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		_, ok := unavailableMySQLErrors[mysqlErr.Number]
		return ok
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range unavailablePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}

	return false
}
