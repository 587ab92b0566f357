package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskflow/internal/model"
)

// busyTimeoutMillis lets a second process wait for the file lock instead of
// failing with SQLITE_BUSY.
const busyTimeoutMillis = 5000

// NewDB opens the SQLite store at dsn, stamps every timestamp in UTC and
// migrates the schema.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "taskflow.db"
	}
	inMemory := isMemoryDSN(dsn)
	if !inMemory {
		if err := ensureParentDir(dsn); err != nil {
			return nil, err
		}
		dsn = withBusyTimeout(dsn)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(os.Stdout, "[db] ", log.LstdFlags),
			logger.Config{
				SlowThreshold:             500 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection: SQLite has a single writer, and an in-memory database
	// exists only on the connection that created it.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dsn, sep, busyTimeoutMillis)
}

// ensureParentDir creates the directory holding the database file.
func ensureParentDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	path = strings.SplitN(path, "?", 2)[0]
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
