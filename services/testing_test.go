package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/config"
	"github.com/JamesPraneeth/fitness-tracker/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own named memory database so tests stay independent;
// cache=shared keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) *models.User {
	t.Helper()

	user := &models.User{
		Email:         email,
		Password:      "not-a-real-hash",
		Name:          "Test User",
		Age:           30,
		Gender:        "male",
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderate",
		Goal:          "maintain",
		IsAdmin:       isAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}
