package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DialectSQLite   = "sqlite"
	DialectMySQL    = "mysql"
	DialectPostgres = "postgres"

	sqliteBusyTimeout = 5 * time.Second
)

// Config describes how to reach the relational store. The zero value is not usable; Path is required
// for sqlite and Host/Name for the server dialects.
type Config struct {
	Dialect            string        `env:"DIALECT" envDefault:"sqlite"`
	Path               string        `env:"PATH" envDefault:"neptunetea.db"`
	Host               string        `env:"HOST" envDefault:"localhost"`
	Port               int           `env:"PORT"`
	User               string        `env:"USER"`
	Password           string        `env:"PASSWORD"`
	Name               string        `env:"NAME" envDefault:"neptunetea"`
	SSLMode            string        `env:"SSL_MODE" envDefault:"disable"`
	MaxOpenConns       int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	SlowQueryThreshold time.Duration `env:"SLOW_QUERY" envDefault:"200ms"`
}

// Validate checks that the configured dialect is supported and has what it needs to connect.
func (c *Config) Validate() error {
	switch c.Dialect {
	case DialectSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return errors.New("sqlite database path is required")
		}
	case DialectMySQL, DialectPostgres:
		if c.Host == "" || c.Name == "" {
			return fmt.Errorf("%s host and database name are required", c.Dialect)
		}
	default:
		return fmt.Errorf("unsupported database dialect %q", c.Dialect)
	}

	return nil
}

// Open connects to the configured store and verifies connectivity.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(newDialector(cfg), &gorm.Config{
		Logger: NewLogger(logger, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open_db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql_db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping_db: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func newDialector(cfg *Config) gorm.Dialector {
	switch cfg.Dialect {
	case DialectMySQL:
		return mysql.Open(mysqlDSN(cfg))
	case DialectPostgres:
		return postgres.Open(postgresDSN(cfg))
	default:
		return sqlite.Open(sqliteDSN(cfg.Path))
	}
}

// sqliteDSN enables WAL and a busy timeout so concurrent requests wait on the engine's locks
// instead of failing with SQLITE_BUSY.
func sqliteDSN(path string) string {
	return fmt.Sprintf(
		"%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.Clean(path),
		sqliteBusyTimeout.Milliseconds(),
	)
}

func mysqlDSN(cfg *Config) string {
	port := cfg.Port
	if port == 0 {
		port = 3306
	}

	c := mysqldriver.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	c.DBName = cfg.Name
	c.ParseTime = true

	return c.FormatDSN()
}

func postgresDSN(cfg *Config) string {
	port := cfg.Port
	if port == 0 {
		port = 5432
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}

	return u.String()
}
