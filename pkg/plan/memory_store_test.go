package plan

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/calendar"
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryStore is an in-memory PlanRepository used across the package tests.
type memoryStore struct {
	entries  []*entities.WeeklyPlanEntry
	recipes  []*entities.Recipe
	products []*entities.Product
	members  []*entities.FamilyMember
}

func (m *memoryStore) Recipes(_ context.Context, categories ...string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range m.recipes {
		if len(categories) == 0 || containsString(categories, r.Category) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryStore) Products(context.Context) ([]*entities.Product, error) {
	return m.products, nil
}

func (m *memoryStore) FamilyMembers(context.Context) ([]*entities.FamilyMember, error) {
	return m.members, nil
}

func (m *memoryStore) FamilyMember(_ context.Context, id uuid.UUID) (*entities.FamilyMember, error) {
	for _, fm := range m.members {
		if fm.ID == id {
			return fm, nil
		}
	}
	return nil, domain.NewNotFound("family member", id)
}

func (m *memoryStore) SlotOccupied(_ context.Context, date time.Time, mealType string, member MemberRef) (bool, error) {
	for _, e := range m.entries {
		d, ok := e.PlannedOn()
		if ok && d.Equal(calendar.Midnight(date)) && e.MealType == mealType && MemberRefOf(e.FamilyMemberID) == member {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) EntriesOn(_ context.Context, date time.Time, member MemberRef) ([]*entities.WeeklyPlanEntry, error) {
	var out []*entities.WeeklyPlanEntry
	for _, e := range m.entries {
		d, ok := e.PlannedOn()
		if ok && d.Equal(calendar.Midnight(date)) && MemberRefOf(e.FamilyMemberID) == member {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryStore) CreateEntry(_ context.Context, entry *entities.WeeklyPlanEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryStore) GetEntries(_ context.Context, within calendar.Range) ([]*entities.WeeklyPlanEntry, error) {
	var out []*entities.WeeklyPlanEntry
	for _, e := range m.entries {
		if within.Bounded() {
			d, ok := e.PlannedOn()
			if !ok || !within.Contains(d) {
				continue
			}
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].PlannedOn()
		b, _ := out[j].PlannedOn()
		return a.Before(b)
	})
	return out, nil
}

func (m *memoryStore) GetEntryByID(_ context.Context, id string) (*entities.WeeklyPlanEntry, error) {
	for _, e := range m.entries {
		if e.ID.String() == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryStore) UpdateEntry(_ context.Context, entry *entities.WeeklyPlanEntry) error {
	for i, e := range m.entries {
		if e.ID == entry.ID {
			m.entries[i] = entry
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryStore) DeleteEntry(_ context.Context, id string) error {
	for i, e := range m.entries {
		if e.ID.String() == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryStore) DeleteRange(_ context.Context, within calendar.Range) (int64, error) {
	var kept []*entities.WeeklyPlanEntry
	var removed int64
	for _, e := range m.entries {
		d, ok := e.PlannedOn()
		inside := !within.Bounded() || (ok && within.Contains(d))
		if inside {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return removed, nil
}

func (m *memoryStore) ReplaceRange(ctx context.Context, within calendar.Range, entries []*entities.WeeklyPlanEntry) error {
	if _, err := m.DeleteRange(ctx, within); err != nil {
		return err
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memoryStore) Transaction(_ context.Context, fn func(store Store) error) error {
	return fn(m)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// fixedPicker always returns the same index, clamped to n.
type fixedPicker int

func (p fixedPicker) Intn(n int) int {
	return min(int(p), n-1)
}

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr(v float64) *float64 { return &v }

// kcalProduct has 100 kcal per 100 g, so grams of it equal calories.
func kcalProduct() *entities.Product {
	return &entities.Product{ID: uuid.New(), Name: "base", Unit: "g", Amount: 1000, Price: 10, Calories: ptr(100), Proteins: ptr(5), Fats: ptr(3), Carbs: ptr(15)}
}

func newRecipe(title, category string, portions int, base *entities.Product, kcal float64) *entities.Recipe {
	r := &entities.Recipe{ID: uuid.New(), Title: title, Category: category, Portions: portions}
	if base != nil && kcal > 0 {
		r.Ingredients = []entities.RecipeIngredient{{ID: uuid.New(), RecipeID: r.ID, ProductID: base.ID, Quantity: kcal}}
	}
	return r
}

func newMember(name string, maxCalories float64) *entities.FamilyMember {
	return &entities.FamilyMember{ID: uuid.New(), Name: name, MaxCalories: maxCalories}
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
