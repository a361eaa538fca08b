// Package testutil provides shared test doubles and fixtures for tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory SQLite database with every
// migration applied. It is closed when the test finishes.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(context.Background(), db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateUser inserts a user row directly and returns its id.
func CreateUser(t testing.TB, db *gorm.DB, username string) uint {
	t.Helper()

	user := models.User{Username: username, PasswordHash: "not-a-real-hash"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}
