package storage

import (
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open boots a GORM handle over the local SQLite file at path. The handle is
// quiet: query logging goes through the adapter's own reporting instead.
func Open(path string) (*gorm.DB, error) {
	quiet := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 quiet,
		SkipDefaultTransaction: true,
	})
}

// Close shuts down the pooled connections behind a GORM handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
