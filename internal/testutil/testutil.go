// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
// A single connection is used, so nested queries must go through the active tx.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

// SeedUsers inserts n users named user1..userN.
func SeedUsers(t *testing.T, db *gorm.DB, n int) []model.User {
	t.Helper()

	users := make([]model.User, n)
	for i := range users {
		users[i] = model.User{
			Email:     fmt.Sprintf("user%d@propdesk.test", i+1),
			FirstName: "User",
			LastName:  fmt.Sprintf("%d", i+1),
		}
	}
	require.NoError(t, db.Create(&users).Error)

	return users
}

// Count returns the number of rows of m matching the optional where clause.
func Count(t *testing.T, db *gorm.DB, m any, where ...any) int64 {
	t.Helper()

	query := db.Model(m)
	if len(where) > 0 {
		query = query.Where(where[0], where[1:]...)
	}

	var n int64
	require.NoError(t, query.Count(&n).Error)
	return n
}
