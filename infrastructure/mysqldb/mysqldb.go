// Package mysqldb opens database/sql handles for MySQL configured from the
// environment.
package mysqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jrazmi/todoview/sdk/environment"
)

// Options represents the exportable database configuration
type Options struct {
	DSN          string        `env:"MYSQL_DSN" default:"root:password@tcp(127.0.0.1:3306)/todo?parseTime=true"`
	MaxOpenConns int           `env:"MYSQL_MAX_OPEN_CONNS" default:"4"`
	MaxIdleConns int           `env:"MYSQL_MAX_IDLE_CONNS" default:"2"`
	MaxLifetime  time.Duration `env:"MYSQL_MAX_LIFETIME" default:"1h"`
	PingTimeout  time.Duration `env:"MYSQL_PING_TIMEOUT" default:"5s"`
}

// NewFromEnv opens a handle from <prefix>_MYSQL_* variables.
func NewFromEnv(ctx context.Context, prefix string) (*sql.DB, error) {
	var cfg Options
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing mysql config: %w", err)
	}
	return New(ctx, cfg)
}

// New opens a handle for cfg and pings it.
func New(ctx context.Context, cfg Options) (*sql.DB, error) {
	mc, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn: %w", err)
	}
	mc.ParseTime = true

	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("creating connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
