package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/lynxmind/task-portal/internal/config"
	"github.com/lynxmind/task-portal/internal/logger"
)

var DB *gorm.DB

// Dialector picks the gorm dialector for the configured driver. "sqlite" is
// the pure-Go modernc driver; "sqlite3" is mattn's cgo driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: sqliteDSN(cfg.Path, "_pragma=busy_timeout(5000)")}), nil
	case config.DriverSQLite3:
		return sqlite.Open(sqliteDSN(cfg.Path, "_busy_timeout=5000")), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverMySQL:
		return mysql.Open(mysqlDSN(cfg.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Open connects to the configured database.
func Open(cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Gorm(log, cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite || cfg.Driver == config.DriverSQLite3 {
		// SQLite serialises writers; one connection avoids SQLITE_BUSY.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Connect opens the database and installs it as the package default.
func Connect(cfg config.DatabaseConfig, log zerolog.Logger) error {
	db, err := Open(cfg, log)
	if err != nil {
		return err
	}
	DB = db

	log.Info().
		Str("driver", cfg.Driver).
		Msg("database connection established")
	return nil
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}

func sqliteDSN(path, busyTimeout string) string {
	if path == ":memory:" {
		return path
	}
	return "file:" + path + "?" + busyTimeout
}

// mysqlDSN makes UPDATE report matched rows rather than changed rows, so
// re-applying the same status is not mistaken for a missing task.
func mysqlDSN(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&clientFoundRows=true"
	}
	return dsn + "?clientFoundRows=true"
}
