package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodLog_Valid(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "eater@test.com", false)
	svc := NewFoodService(db)

	entry, err := svc.Log(context.Background(), user.ID, FoodInput{
		Name:     "  oatmeal ",
		Date:     day(2026, time.August, 10),
		Calories: 350,
		Protein:  12,
		Carbs:    60,
		Fats:     6,
	})
	require.NoError(t, err)
	assert.Equal(t, "oatmeal", entry.Name)
	assert.Equal(t, day(2026, time.August, 10), entry.Date.Local())
}

func TestFoodLog_Validation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "strict@test.com", false)
	svc := NewFoodService(db)

	cases := []struct {
		name string
		in   FoodInput
	}{
		{"empty name", FoodInput{Name: "   ", Calories: 100}},
		{"negative calories", FoodInput{Name: "x", Calories: -1}},
		{"negative protein", FoodInput{Name: "x", Protein: -0.5}},
		{"negative carbs", FoodInput{Name: "x", Carbs: -10}},
		{"negative fats", FoodInput{Name: "x", Fats: -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Log(context.Background(), user.ID, tc.in)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestFoodDelete_Authorization(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@test.com", false)
	stranger := createTestUser(t, db, "stranger@test.com", false)
	admin := createTestUser(t, db, "admin@test.com", true)
	svc := NewFoodService(db)

	newEntry := func() uint {
		entry, err := svc.Log(context.Background(), owner.ID, FoodInput{Name: "yogurt", Calories: 120})
		require.NoError(t, err)
		return entry.ID
	}

	t.Run("stranger is rejected", func(t *testing.T) {
		id := newEntry()
		err := svc.Delete(context.Background(), id, stranger.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner may delete", func(t *testing.T) {
		id := newEntry()
		assert.NoError(t, svc.Delete(context.Background(), id, owner.ID))
	})

	t.Run("admin may delete", func(t *testing.T) {
		id := newEntry()
		assert.NoError(t, svc.Delete(context.Background(), id, admin.ID))
	})

	t.Run("unknown entry", func(t *testing.T) {
		err := svc.Delete(context.Background(), 98765, owner.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFoodUpdate_Authorization(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner2@test.com", false)
	stranger := createTestUser(t, db, "stranger2@test.com", false)
	svc := NewFoodService(db)

	entry, err := svc.Log(context.Background(), owner.ID, FoodInput{Name: "rice", Calories: 200})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), entry.ID, stranger.ID, FoodInput{Name: "rice", Calories: 300})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(context.Background(), entry.ID, owner.ID, FoodInput{Name: "fried rice", Calories: 320})
	require.NoError(t, err)
	assert.Equal(t, "fried rice", updated.Name)
	assert.Equal(t, 320.0, updated.Calories)
}

func TestFoodList_OrderedByDate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "lister@test.com", false)
	svc := NewFoodService(db)

	for _, d := range []int{3, 1, 2} {
		_, err := svc.Log(context.Background(), user.ID, FoodInput{
			Name: "meal", Date: day(2026, time.August, d), Calories: 100,
		})
		require.NoError(t, err)
	}

	logs, err := svc.ListByRange(context.Background(), user.ID,
		day(2026, time.August, 1), day(2026, time.August, 3))
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.True(t, logs[0].Date.Before(logs[1].Date))
	assert.True(t, logs[1].Date.Before(logs[2].Date))
}
