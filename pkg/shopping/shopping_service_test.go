package shopping

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/calendar"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySource struct {
	f       *fixture
	entries []*entities.WeeklyPlanEntry
}

func (m *memorySource) GetEntries(context.Context, calendar.Range) ([]*entities.WeeklyPlanEntry, error) {
	return m.entries, nil
}

func (m *memorySource) Recipes(context.Context, ...string) ([]*entities.Recipe, error) {
	out := make([]*entities.Recipe, 0, len(m.f.recipes))
	for _, r := range m.f.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (m *memorySource) Products(context.Context) ([]*entities.Product, error) {
	out := make([]*entities.Product, 0, len(m.f.products))
	for _, p := range m.f.products {
		out = append(out, p)
	}
	return out, nil
}

type outbox struct {
	to, subject, body string
	err               error
}

func (o *outbox) send(to, subject, body string) error {
	o.to, o.subject, o.body = to, subject, body
	return o.err
}

func newSource() *memorySource {
	f := newFixture()
	milk := f.product("Milk", "l", 1, 80)
	oats := f.product("Oats & Co", "g", 500, 120)
	porridge := f.recipe(2, map[*entities.Product]float64{milk: 0.5, oats: 100})
	return &memorySource{f: f, entries: []*entities.WeeklyPlanEntry{
		entry(porridge.ID, 2, "2024-05-13"),
		entry(porridge.ID, 4, "2024-05-14"),
		entry(porridge.ID, 2, "2024-05-27"),
	}}
}

func TestGetShoppingList(t *testing.T) {
	svc := NewShoppingService(newSource(), (&outbox{}).send)

	list, err := svc.GetShoppingList(context.Background(), domain.PlanRangeRequest{StartDate: "2024-05-13", EndDate: "2024-05-19"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	assert.Equal(t, "Milk", list.Items[0].Name)
	assert.Equal(t, 1.5, list.Items[0].TotalQuantity)
	assert.Equal(t, 120.0, list.Items[0].EstimatedCost)
	assert.Equal(t, "Oats & Co", list.Items[1].Name)
	assert.Equal(t, 300.0, list.Items[1].TotalQuantity)
	assert.Equal(t, 72.0, list.Items[1].EstimatedCost)
	assert.Equal(t, 192.0, list.TotalCost)
	assert.Equal(t, "2024-05-13", list.StartDate)
}

func TestGetShoppingListBadRange(t *testing.T) {
	svc := NewShoppingService(newSource(), (&outbox{}).send)

	_, err := svc.GetShoppingList(context.Background(), domain.PlanRangeRequest{StartDate: "2024-05-19", EndDate: "2024-05-13"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.GetShoppingList(context.Background(), domain.PlanRangeRequest{StartDate: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSendShoppingList(t *testing.T) {
	box := &outbox{}
	svc := NewShoppingService(newSource(), box.send)

	list, err := svc.SendShoppingList(context.Background(), domain.SendShoppingListRequest{
		Email: "home@example.com", StartDate: "2024-05-13", EndDate: "2024-05-19",
	})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, "home@example.com", box.to)
	assert.Equal(t, mailSubject, box.subject)
	assert.Contains(t, box.body, "Oats &amp; Co")
	assert.Contains(t, box.body, "192.00")
	assert.Contains(t, box.body, "2024-05-13 - 2024-05-19")
}

func TestSendShoppingListMailFailure(t *testing.T) {
	box := &outbox{err: errors.New("smtp down")}
	svc := NewShoppingService(newSource(), box.send)

	_, err := svc.SendShoppingList(context.Background(), domain.SendShoppingListRequest{Email: "home@example.com"})
	assert.EqualError(t, err, "smtp down")
}

func TestRenderEmptyList(t *testing.T) {
	body, err := RenderList(domain.ShoppingListResponse{})
	require.NoError(t, err)
	assert.Contains(t, body, "Nothing to buy.")
}
