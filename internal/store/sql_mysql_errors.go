package store

import (
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers used by [MySQLErrorClassifier].
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	mysqlErrDupEntry        uint16 = 1062
	mysqlErrLockWaitTimeout uint16 = 1205
	mysqlErrLockDeadlock    uint16 = 1213
	mysqlErrServerGone      uint16 = 2006
)

// MySQLErrorClassifier implements [ErrorClassificator] for go-sql-driver/mysql.
type MySQLErrorClassifier struct{}

func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify treats deadlocks, lock wait timeouts and dropped connections as
// [Retryable].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrLockDeadlock, mysqlErrLockWaitTimeout, mysqlErrServerGone:
			return Retryable
		}
		return NonRetryable
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	return NonRetryable
}

func (c *MySQLErrorClassifier) IsUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDupEntry
}
