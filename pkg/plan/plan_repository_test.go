package plan

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/calendar"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens TEST_DATABASE_URL and returns a transaction that is rolled
// back when the test ends.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	require.NoError(t, db.AutoMigrate(&entities.Product{}, &entities.Recipe{}, &entities.RecipeIngredient{}, &entities.FamilyMember{}, &entities.WeeklyPlanEntry{}))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func TestPlanRepositoryRanges(t *testing.T) {
	repo := NewPlanRepository(testDB(t))
	ctx := context.Background()
	recipeID := uuid.New()
	member := &entities.FamilyMember{ID: uuid.New(), Name: "Lena", MaxCalories: 1800}

	monday := date("2099-06-01")
	week := calendar.Between(monday, monday.AddDate(0, 0, 6))

	require.NoError(t, repo.CreateEntry(ctx, newEntry(monday, domain.MealLunch, recipeID, Shared())))
	require.NoError(t, repo.CreateEntry(ctx, newEntry(monday, domain.MealLunch, recipeID, Person(member.ID))))
	require.NoError(t, repo.CreateEntry(ctx, newEntry(monday.AddDate(0, 0, 9), domain.MealDinner, recipeID, Shared())))

	entries, err := repo.GetEntries(ctx, week)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	busy, err := repo.SlotOccupied(ctx, monday, domain.MealLunch, Shared())
	require.NoError(t, err)
	assert.True(t, busy)
	busy, err = repo.SlotOccupied(ctx, monday, domain.MealDinner, Person(member.ID))
	require.NoError(t, err)
	assert.False(t, busy)

	mine, err := repo.EntriesOn(ctx, monday, Person(member.ID))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, member.ID, *mine[0].FamilyMemberID)

	replacement := newEntry(monday.AddDate(0, 0, 2), domain.MealDinner, recipeID, Shared())
	require.NoError(t, repo.ReplaceRange(ctx, week, []*entities.WeeklyPlanEntry{replacement}))

	entries, err = repo.GetEntries(ctx, week)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, replacement.ID, entries[0].ID)

	removed, err := repo.DeleteRange(ctx, calendar.Between(monday, monday.AddDate(0, 0, 13)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestPlanRepositoryLookups(t *testing.T) {
	repo := NewPlanRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.FamilyMember(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetEntryByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteEntry(ctx, uuid.NewString()), gorm.ErrRecordNotFound)

	err = repo.Transaction(ctx, func(store Store) error {
		return store.CreateEntry(ctx, newEntry(date("2099-07-01"), domain.MealBreakfast, uuid.New(), Shared()))
	})
	require.NoError(t, err)
	busy, err := repo.SlotOccupied(ctx, date("2099-07-01"), domain.MealBreakfast, Shared())
	require.NoError(t, err)
	assert.True(t, busy)
}
