// Package testutil opens throwaway catalog databases for package tests.
package testutil

import (
	"fmt"
	"lighthouse/internal/database"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewSQLiteDB returns a migrated in-memory database private to the test.
func NewSQLiteDB(t testing.TB) database.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	sql, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := sql.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	db := database.NewWithGorm(sql)
	require.NoError(t, db.MigrateModels())

	return db
}
