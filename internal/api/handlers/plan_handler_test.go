package handlers

import (
	"Meal-Planner/domain"
	"Meal-Planner/internal/api/presenters"
	"Meal-Planner/internal/utils"
	"Meal-Planner/pkg/plan"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPlanService answers the calls a test cares about; any other method
// panics through the nil embedded interface.
type stubPlanService struct {
	plan.PlanService
	autofillErr error
	added       []domain.PlanEntryRequest
	ranges      []domain.PlanRangeRequest
}

func (s *stubPlanService) AutofillOne(context.Context, domain.AutofillOneRequest) (domain.AutofillOneResponse, error) {
	return domain.AutofillOneResponse{}, s.autofillErr
}

func (s *stubPlanService) AddEntry(_ context.Context, req domain.PlanEntryRequest) (domain.PlanEntry, error) {
	s.added = append(s.added, req)
	return domain.PlanEntry{ID: uuid.NewString(), MealType: req.MealType, RecipeID: req.RecipeID}, nil
}

func (s *stubPlanService) GetPlan(_ context.Context, req domain.PlanRangeRequest) ([]domain.PlanEntry, error) {
	s.ranges = append(s.ranges, req)
	return []domain.PlanEntry{}, nil
}

func newPlanApp(svc plan.PlanService) *fiber.App {
	app := fiber.New()
	h := NewPlanHandler(svc, utils.NewValidator())
	app.Get("/plan", h.GetPlan)
	app.Post("/plan", h.AddEntry)
	app.Post("/plan/autofill", h.AutofillOne)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, presenters.Response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	res, err := app.Test(req)
	require.NoError(t, err)

	var out presenters.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestAutofillOneStatus(t *testing.T) {
	svc := &stubPlanService{autofillErr: &domain.SlotOccupiedError{MealType: domain.MealLunch}}
	app := newPlanApp(svc)

	status, res := do(t, app, fiber.MethodPost, "/plan/autofill", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, res.Status)
	assert.Equal(t, domain.MessageFailedAutofill, res.Message)

	svc.autofillErr = &domain.NoCandidatesError{MealType: domain.MealLunch}
	status, _ = do(t, app, fiber.MethodPost, "/plan/autofill", `{}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	svc.autofillErr = nil
	status, res = do(t, app, fiber.MethodPost, "/plan/autofill", "")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, res.Status)
}

func TestAddEntryValidation(t *testing.T) {
	svc := &stubPlanService{}
	app := newPlanApp(svc)

	status, _ := do(t, app, fiber.MethodPost, "/plan", `{"meal_type":"brunch","recipe_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, svc.added)

	status, res := do(t, app, fiber.MethodPost, "/plan", `{"meal_type":"dinner","day_of_week":"Пятница","recipe_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, domain.MessageSuccessAddPlanEntry, res.Message)
	require.Len(t, svc.added, 1)
	assert.Equal(t, "Пятница", svc.added[0].DayOfWeek)
}

func TestGetPlanRangeQuery(t *testing.T) {
	svc := &stubPlanService{}
	app := newPlanApp(svc)

	status, _ := do(t, app, fiber.MethodGet, "/plan?start_date=2024-05-13&end_date=2024-05-19", "")
	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, svc.ranges, 1)
	assert.Equal(t, "2024-05-13", svc.ranges[0].StartDate)
	assert.Equal(t, "2024-05-19", svc.ranges[0].EndDate)

	status, _ = do(t, app, fiber.MethodGet, "/plan?start_date=13.05.2024", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Len(t, svc.ranges, 1)
}
