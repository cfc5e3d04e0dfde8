package plan

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/calendar"
	"Meal-Planner/pkg/nutrition"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCalorieLimit applies to the shared slot and to members without a target.
	DefaultCalorieLimit = 2000
	// CalorieMargin is how close to the limit a week fill stops serving a member.
	CalorieMargin = 200
)

var (
	weekMeals      = []string{domain.MealLunch, domain.MealDinner}
	weekCategories = []string{domain.CategorySoup, domain.CategoryMain}
)

type (
	// Store is everything autofill reads and writes. SlotOccupied followed by
	// CreateEntry must be atomic, so callers run a fill inside one transaction.
	Store interface {
		Recipes(ctx context.Context, categories ...string) ([]*entities.Recipe, error)
		Products(ctx context.Context) ([]*entities.Product, error)
		FamilyMembers(ctx context.Context) ([]*entities.FamilyMember, error)
		FamilyMember(ctx context.Context, id uuid.UUID) (*entities.FamilyMember, error)
		SlotOccupied(ctx context.Context, date time.Time, mealType string, member MemberRef) (bool, error)
		EntriesOn(ctx context.Context, date time.Time, member MemberRef) ([]*entities.WeeklyPlanEntry, error)
		CreateEntry(ctx context.Context, entry *entities.WeeklyPlanEntry) error
	}

	Picker interface {
		Intn(n int) int
	}

	Autofiller struct {
		store Store
		now   func() time.Time
		pick  Picker
	}

	FillResult struct {
		Entry   *entities.WeeklyPlanEntry
		Recipe  *entities.Recipe
		Warning string
	}

	WeekResult struct {
		Created int
		Start   time.Time
		End     time.Time
		Members int
	}

	globalRand struct{}
)

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// NewAutofiller wires a fill over store. A nil clock means time.Now and a nil
// picker means math/rand.
func NewAutofiller(store Store, now func() time.Time, pick Picker) *Autofiller {
	if now == nil {
		now = time.Now
	}
	if pick == nil {
		pick = globalRand{}
	}
	return &Autofiller{store: store, now: now, pick: pick}
}

// MealForHour buckets the hour of day into a meal.
func MealForHour(hour int) string {
	switch {
	case hour < 11:
		return domain.MealBreakfast
	case hour < 14:
		return domain.MealLunch
	case hour < 18:
		return domain.MealAfternoonSnack
	default:
		return domain.MealDinner
	}
}

func CategoriesFor(mealType string) []string {
	switch mealType {
	case domain.MealBreakfast:
		return []string{domain.CategoryBreakfast, domain.CategorySnack}
	case domain.MealLunch:
		return []string{domain.CategorySoup, domain.CategoryMain, domain.CategorySalad}
	case domain.MealDinner:
		return []string{domain.CategoryMain, domain.CategorySalad, domain.CategorySnack}
	default:
		return []string{domain.CategorySnack}
	}
}

// FillOne plans one random recipe for the meal matching the current hour,
// today, for member. Going over the member's calories only yields a warning.
func (a *Autofiller) FillOne(ctx context.Context, member MemberRef) (FillResult, error) {
	now := a.now()
	today := calendar.Midnight(now)
	meal := MealForHour(now.Hour())
	categories := CategoriesFor(meal)

	candidates, err := a.store.Recipes(ctx, categories...)
	if err != nil {
		return FillResult{}, err
	}
	if len(candidates) == 0 {
		return FillResult{}, &domain.NoCandidatesError{MealType: meal, Categories: categories}
	}

	var person *entities.FamilyMember
	if id, ok := member.ID(); ok {
		if person, err = a.store.FamilyMember(ctx, id); err != nil {
			return FillResult{}, err
		}
	}

	occupied, err := a.store.SlotOccupied(ctx, today, meal, member)
	if err != nil {
		return FillResult{}, err
	}
	if occupied {
		who := ""
		if person != nil {
			who = person.Name
		}
		return FillResult{}, &domain.SlotOccupiedError{Date: today, MealType: meal, Member: who}
	}

	recipe := candidates[a.pick.Intn(len(candidates))]
	entry := newEntry(today, meal, recipe.ID, member)
	if err := a.store.CreateEntry(ctx, entry); err != nil {
		return FillResult{}, err
	}

	res := FillResult{Entry: entry, Recipe: recipe}
	if person != nil {
		res.Warning, err = a.calorieWarning(ctx, today, member, person)
		if err != nil {
			return FillResult{}, err
		}
	}
	return res, nil
}

func (a *Autofiller) calorieWarning(ctx context.Context, day time.Time, member MemberRef, person *entities.FamilyMember) (string, error) {
	entries, err := a.store.EntriesOn(ctx, day, member)
	if err != nil {
		return "", err
	}
	recipes, err := a.store.Recipes(ctx)
	if err != nil {
		return "", err
	}
	products, err := a.store.Products(ctx)
	if err != nil {
		return "", err
	}

	cookbook := nutrition.NewCookbook(recipes)
	catalog := nutrition.NewCatalog(products)
	var total float64
	for _, e := range entries {
		r, ok := cookbook.Recipe(e.RecipeID)
		if !ok {
			continue
		}
		total += nutrition.Calculate(r, catalog).CaloriesPerPortion * float64(max(e.Portions, 1))
	}

	limit := calorieLimit(person)
	if total <= limit {
		return "", nil
	}
	return fmt.Sprintf("%s is over the daily calorie target (%.0f kcal): %.0f kcal planned for today", person.Name, limit, total), nil
}

// FillWeek plans lunch and dinner for next Monday through Sunday using the
// pot model: a cooked recipe feeds as many servings as it has portions
// before another one is cooked.
func (a *Autofiller) FillWeek(ctx context.Context) (WeekResult, error) {
	members, err := a.store.FamilyMembers(ctx)
	if err != nil {
		return WeekResult{}, err
	}
	candidates, err := a.store.Recipes(ctx, weekCategories...)
	if err != nil {
		return WeekResult{}, err
	}
	if len(candidates) == 0 {
		return WeekResult{}, &domain.NoCandidatesError{MealType: domain.MealLunch + "/" + domain.MealDinner, Categories: weekCategories}
	}
	products, err := a.store.Products(ctx)
	if err != nil {
		return WeekResult{}, err
	}

	type diner struct {
		ref   MemberRef
		limit float64
	}
	diners := make([]diner, 0, len(members))
	for _, m := range members {
		diners = append(diners, diner{ref: Person(m.ID), limit: calorieLimit(m)})
	}
	if len(diners) == 0 {
		diners = append(diners, diner{ref: Shared(), limit: DefaultCalorieLimit})
	}

	catalog := nutrition.NewCatalog(products)
	perPortion := make(map[uuid.UUID]float64, len(candidates))
	for _, r := range candidates {
		perPortion[r.ID] = nutrition.Calculate(r, catalog).CaloriesPerPortion
	}

	type dayKey struct {
		date time.Time
		ref  MemberRef
	}
	eaten := make(map[dayKey]float64)

	start := calendar.NextMonday(a.now())
	res := WeekResult{Start: start, End: start.AddDate(0, 0, 6), Members: len(members)}

	var (
		pot      *entities.Recipe
		left     int
		lastCook uuid.UUID
	)

	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		for _, meal := range weekMeals {
			if left <= 0 {
				pot = a.cook(candidates, lastCook)
				lastCook = pot.ID
				left = max(pot.Portions, 1)
			}

			for _, d := range diners {
				if left <= 0 {
					break
				}
				occupied, err := a.store.SlotOccupied(ctx, date, meal, d.ref)
				if err != nil {
					return res, err
				}
				if occupied {
					continue
				}

				key := dayKey{date: date, ref: d.ref}
				if eaten[key] >= d.limit-CalorieMargin {
					continue
				}

				if err := a.store.CreateEntry(ctx, newEntry(date, meal, pot.ID, d.ref)); err != nil {
					return res, err
				}
				res.Created++
				left--
				eaten[key] += perPortion[pot.ID]
			}
		}
	}
	return res, nil
}

// cook picks a new pot, avoiding the previous one when there is a choice.
func (a *Autofiller) cook(candidates []*entities.Recipe, last uuid.UUID) *entities.Recipe {
	pool := make([]*entities.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if r.ID != last {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		pool = candidates
	}
	return pool[a.pick.Intn(len(pool))]
}

func calorieLimit(m *entities.FamilyMember) float64 {
	if m == nil || m.MaxCalories <= 0 {
		return DefaultCalorieLimit
	}
	return m.MaxCalories
}

func newEntry(date time.Time, mealType string, recipeID uuid.UUID, member MemberRef) *entities.WeeklyPlanEntry {
	entry := &entities.WeeklyPlanEntry{
		ID:             uuid.New(),
		DayOfWeek:      calendar.DayName(date),
		MealType:       mealType,
		RecipeID:       recipeID,
		Portions:       1,
		FamilyMemberID: member.Ptr(),
	}
	entry.SetDate(date)
	return entry
}
