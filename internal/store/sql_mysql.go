package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-signout/internal/logger"
)

// NewConnectMySQL opens a MySQL connection. dsn is in go-sql-driver format
// (user:pass@tcp(host:3306)/db); parseTime is forced so DATETIME columns scan
// into time.Time.
func NewConnectMySQL(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid mysql dsn")
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}
	mysqlCfg.ParseTime = true
	mysqlCfg.Loc = time.UTC

	conn, err := sql.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxLifetime(3 * time.Minute)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	return newDB(conn, DialectMySQL, NewMySQLErrorClassifier(), log), nil
}
