package plan

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/nutrition"
	"sort"
	"time"

	"github.com/google/uuid"
)

type statsKey struct {
	date   time.Time
	member MemberRef
}

type statsSum struct {
	cost, calories, proteins, fats, carbs float64
}

// DailyStats totals cost and nutrition per day and per member (or shared),
// scaling each entry by planned over base portions. Undated entries and
// entries with a missing recipe are left out.
func DailyStats(entries []*entities.WeeklyPlanEntry, recipes nutrition.RecipeLookup, products nutrition.ProductLookup, members map[uuid.UUID]*entities.FamilyMember) []domain.DailyTotals {
	sums := make(map[statsKey]*statsSum)
	perRecipe := make(map[uuid.UUID]domain.RecipeNutrition)

	for _, e := range entries {
		date, ok := e.PlannedOn()
		if !ok {
			continue
		}
		recipe, ok := recipes.Recipe(e.RecipeID)
		if !ok {
			continue
		}
		n, seen := perRecipe[recipe.ID]
		if !seen {
			n = nutrition.Calculate(recipe, products)
			perRecipe[recipe.ID] = n
		}

		key := statsKey{date: date, member: MemberRefOf(e.FamilyMemberID)}
		s := sums[key]
		if s == nil {
			s = &statsSum{}
			sums[key] = s
		}
		ratio := nutrition.PortionRatio(e.Portions, recipe.Portions)
		s.cost += n.TotalCost * ratio
		s.calories += n.TotalCalories * ratio
		s.proteins += n.TotalProteins * ratio
		s.fats += n.TotalFats * ratio
		s.carbs += n.TotalCarbs * ratio
	}

	keys := make([]statsKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].date.Equal(keys[j].date) {
			return keys[i].date.Before(keys[j].date)
		}
		if keys[i].member.IsShared() != keys[j].member.IsShared() {
			return keys[i].member.IsShared()
		}
		return keys[i].member.String() < keys[j].member.String()
	})

	out := make([]domain.DailyTotals, 0, len(keys))
	for _, k := range keys {
		s := sums[k]
		t := domain.DailyTotals{
			Date:           k.date.Format(domain.DateLayout),
			FamilyMemberID: k.member.StringPtr(),
			Cost:           nutrition.Round(s.cost, 2),
			Calories:       nutrition.Round(s.calories, 0),
			Proteins:       nutrition.Round(s.proteins, 1),
			Fats:           nutrition.Round(s.fats, 1),
			Carbs:          nutrition.Round(s.carbs, 1),
			Warnings:       nutrition.MacroWarnings(s.proteins, s.fats, s.carbs),
		}
		if id, ok := k.member.ID(); ok {
			if m := members[id]; m != nil {
				t.OverCalories = over(t.Calories, m.MaxCalories)
				t.OverProteins = over(t.Proteins, m.MaxProteins)
				t.OverFats = over(t.Fats, m.MaxFats)
				t.OverCarbs = over(t.Carbs, m.MaxCarbs)
			}
		}
		if t.Warnings == nil {
			t.Warnings = []string{}
		}
		out = append(out, t)
	}
	return out
}

func over(value, limit float64) bool {
	return limit > 0 && value > limit
}
