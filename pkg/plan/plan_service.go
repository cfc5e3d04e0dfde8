package plan

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/utils/storage"
	"Meal-Planner/pkg/calendar"
	"Meal-Planner/pkg/nutrition"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlanService interface {
		GetPlan(ctx context.Context, req domain.PlanRangeRequest) ([]domain.PlanEntry, error)
		AddEntry(ctx context.Context, req domain.PlanEntryRequest) (domain.PlanEntry, error)
		UpdateEntry(ctx context.Context, id string, req domain.PlanEntryUpdateRequest) (domain.PlanEntry, error)
		DeleteEntry(ctx context.Context, id string) error
		ClearPlan(ctx context.Context, req domain.PlanRangeRequest) (int64, error)
		BatchUpdate(ctx context.Context, req domain.PlanBatchRequest) ([]domain.PlanEntry, error)
		AutofillOne(ctx context.Context, req domain.AutofillOneRequest) (domain.AutofillOneResponse, error)
		AutofillWeek(ctx context.Context) (domain.AutofillWeekResponse, error)
		ExportPlan(ctx context.Context) (domain.ExportResult, error)
		ImportPlan(ctx context.Context) (domain.ImportResult, error)
		GetStats(ctx context.Context, req domain.PlanRangeRequest) ([]domain.DailyTotals, error)
	}

	planService struct {
		planRepository PlanRepository
		s3             storage.AwsS3
		now            func() time.Time
		pick           Picker
	}
)

func NewPlanService(planRepository PlanRepository, s3 storage.AwsS3, now func() time.Time, pick Picker) PlanService {
	if now == nil {
		now = time.Now
	}
	return &planService{
		planRepository: planRepository,
		s3:             s3,
		now:            now,
		pick:           pick,
	}
}

func (s *planService) GetPlan(ctx context.Context, req domain.PlanRangeRequest) ([]domain.PlanEntry, error) {
	within, err := calendar.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.planRepository.GetEntries(ctx, within)
	if err != nil {
		return nil, err
	}
	cookbook, err := s.cookbook(ctx)
	if err != nil {
		return nil, err
	}
	return ToEntries(entries, cookbook), nil
}

func (s *planService) AddEntry(ctx context.Context, req domain.PlanEntryRequest) (domain.PlanEntry, error) {
	cookbook, err := s.cookbook(ctx)
	if err != nil {
		return domain.PlanEntry{}, err
	}
	entry, err := s.build(ctx, req, cookbook, s.now())
	if err != nil {
		return domain.PlanEntry{}, err
	}
	if err := s.planRepository.CreateEntry(ctx, entry); err != nil {
		return domain.PlanEntry{}, err
	}
	return ToEntry(entry, cookbook), nil
}

// UpdateEntry applies the fields present in req. A new day_of_week without
// a date moves the entry within its current week.
func (s *planService) UpdateEntry(ctx context.Context, id string, req domain.PlanEntryUpdateRequest) (domain.PlanEntry, error) {
	entry, err := s.find(ctx, id)
	if err != nil {
		return domain.PlanEntry{}, err
	}
	cookbook, err := s.cookbook(ctx)
	if err != nil {
		return domain.PlanEntry{}, err
	}

	if req.Portions != nil {
		entry.Portions = max(*req.Portions, 1)
	}
	if req.MealType != nil {
		entry.MealType = *req.MealType
	}
	if req.RecipeID != nil {
		recipeID, err := s.recipeID(*req.RecipeID, cookbook)
		if err != nil {
			return domain.PlanEntry{}, err
		}
		entry.RecipeID = recipeID
	}
	if req.Shared {
		entry.FamilyMemberID = nil
	} else if req.FamilyMemberID != nil {
		member, err := s.member(ctx, req.FamilyMemberID)
		if err != nil {
			return domain.PlanEntry{}, err
		}
		entry.FamilyMemberID = member.Ptr()
	}

	switch {
	case req.Date != nil:
		date, err := calendar.ParseDate(*req.Date)
		if err != nil {
			return domain.PlanEntry{}, err
		}
		entry.SetDate(date)
		entry.DayOfWeek = calendar.DayName(date)
		if req.DayOfWeek != nil {
			entry.DayOfWeek = *req.DayOfWeek
		}
	case req.DayOfWeek != nil:
		ref, ok := entry.PlannedOn()
		if !ok {
			ref = s.now()
		}
		entry.SetDate(calendar.DateForDay(*req.DayOfWeek, ref))
		entry.DayOfWeek = *req.DayOfWeek
	}

	if err := s.planRepository.UpdateEntry(ctx, entry); err != nil {
		return domain.PlanEntry{}, err
	}
	return ToEntry(entry, cookbook), nil
}

func (s *planService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.planRepository.DeleteEntry(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPlanEntryNotFound
		}
		return err
	}
	return nil
}

func (s *planService) ClearPlan(ctx context.Context, req domain.PlanRangeRequest) (int64, error) {
	within, err := calendar.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return 0, err
	}
	removed, err := s.planRepository.DeleteRange(ctx, within)
	if err != nil {
		return 0, err
	}
	log.Infow("plan cleared", "range", within.String(), "removed", removed)
	return removed, nil
}

// BatchUpdate replaces everything between the earliest and latest dated
// entry of the batch. Undated entries resolve their day within the week of
// the earliest date.
func (s *planService) BatchUpdate(ctx context.Context, req domain.PlanBatchRequest) ([]domain.PlanEntry, error) {
	if len(req.Entries) == 0 {
		return []domain.PlanEntry{}, nil
	}

	var dates []time.Time
	for _, item := range req.Entries {
		if item.Date == "" {
			continue
		}
		date, err := calendar.ParseDate(item.Date)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if len(dates) == 0 {
		return nil, domain.ErrBatchWithoutDates
	}
	first := slices.MinFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	last := slices.MaxFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	cookbook, err := s.cookbook(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.WeeklyPlanEntry, 0, len(req.Entries))
	for _, item := range req.Entries {
		entry, err := s.build(ctx, item, cookbook, first)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := s.planRepository.ReplaceRange(ctx, calendar.Between(first, last), entries); err != nil {
		return nil, err
	}
	return ToEntries(entries, cookbook), nil
}

func (s *planService) AutofillOne(ctx context.Context, req domain.AutofillOneRequest) (domain.AutofillOneResponse, error) {
	member, err := ParseMemberRef(req.FamilyMemberID)
	if err != nil {
		return domain.AutofillOneResponse{}, err
	}

	var res FillResult
	err = s.planRepository.Transaction(ctx, func(store Store) error {
		var err error
		res, err = NewAutofiller(store, s.now, s.pick).FillOne(ctx, member)
		return err
	})
	if err != nil {
		return domain.AutofillOneResponse{}, err
	}

	log.Infow("autofilled one slot", "meal", res.Entry.MealType, "member", member.String(), "recipe", res.Recipe.Title)
	return domain.AutofillOneResponse{
		Entry:   ToEntry(res.Entry, nutrition.Cookbook{res.Recipe.ID: res.Recipe}),
		Recipe:  res.Recipe.Title,
		Warning: res.Warning,
	}, nil
}

func (s *planService) AutofillWeek(ctx context.Context) (domain.AutofillWeekResponse, error) {
	var res WeekResult
	err := s.planRepository.Transaction(ctx, func(store Store) error {
		var err error
		res, err = NewAutofiller(store, s.now, s.pick).FillWeek(ctx)
		return err
	})
	if err != nil {
		return domain.AutofillWeekResponse{}, err
	}

	log.Infow("autofilled week", "created", res.Created, "members", res.Members, "start", res.Start.Format(domain.DateLayout))
	return domain.AutofillWeekResponse{
		Created:   res.Created,
		WeekStart: res.Start.Format(domain.DateLayout),
		WeekEnd:   res.End.Format(domain.DateLayout),
	}, nil
}

func (s *planService) ExportPlan(ctx context.Context) (domain.ExportResult, error) {
	entries, err := s.planRepository.GetEntries(ctx, s.currentWeek())
	if err != nil {
		return domain.ExportResult{}, err
	}

	data := make([]domain.PlanBackupEntry, 0, len(entries))
	for _, e := range entries {
		item := domain.PlanBackupEntry{
			Day:            e.DayOfWeek,
			Meal:           e.MealType,
			RecipeID:       e.RecipeID.String(),
			Portions:       e.Portions,
			FamilyMemberID: MemberRefOf(e.FamilyMemberID).StringPtr(),
		}
		if date, ok := e.PlannedOn(); ok {
			formatted := date.Format(domain.DateLayout)
			item.Date = &formatted
			if item.Day == "" {
				item.Day = calendar.DayName(date)
			}
		}
		data = append(data, item)
	}

	key, err := s.s3.PutJSON(ctx, storage.PlanBackup, data)
	if err != nil {
		return domain.ExportResult{}, err
	}
	log.Infow("plan exported", "key", key, "count", len(data))

	return domain.ExportResult{
		Message: fmt.Sprintf("saved %d entries from the current week", len(data)),
		Key:     key,
		URL:     s.s3.GetPublicLinkKey(key),
		Count:   len(data),
	}, nil
}

// ImportPlan replaces the current week with the backup, placing every entry
// on its day name within this week. Entries with an unknown recipe or meal
// are skipped; an unknown member turns the entry into a shared one.
func (s *planService) ImportPlan(ctx context.Context) (domain.ImportResult, error) {
	var data []domain.PlanBackupEntry
	if err := s.s3.GetJSON(ctx, storage.PlanBackup, &data); err != nil {
		return domain.ImportResult{}, err
	}

	cookbook, err := s.cookbook(ctx)
	if err != nil {
		return domain.ImportResult{}, err
	}
	members, err := s.planRepository.FamilyMembers(ctx)
	if err != nil {
		return domain.ImportResult{}, err
	}
	known := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		known[m.ID] = true
	}

	now := s.now()
	res := domain.ImportResult{Message: domain.MessageSuccessImport}
	entries := make([]*entities.WeeklyPlanEntry, 0, len(data))
	for _, item := range data {
		recipeID, err := uuid.Parse(item.RecipeID)
		if err != nil {
			res.Skipped++
			continue
		}
		if _, ok := cookbook.Recipe(recipeID); !ok || !slices.Contains(domain.MealTypes, item.Meal) {
			res.Skipped++
			continue
		}

		member, err := ParseMemberRef(item.FamilyMemberID)
		if id, ok := member.ID(); err != nil || (ok && !known[id]) {
			member = Shared()
		}

		date := calendar.DateForDay(item.Day, now)
		entry := &entities.WeeklyPlanEntry{
			ID:             uuid.New(),
			DayOfWeek:      item.Day,
			MealType:       item.Meal,
			RecipeID:       recipeID,
			Portions:       max(item.Portions, 1),
			FamilyMemberID: member.Ptr(),
		}
		if entry.DayOfWeek == "" {
			entry.DayOfWeek = calendar.DayName(date)
		}
		entry.SetDate(date)
		entries = append(entries, entry)
	}

	if err := s.planRepository.ReplaceRange(ctx, s.currentWeek(), entries); err != nil {
		return domain.ImportResult{}, err
	}
	res.Created = len(entries)

	log.Infow("plan imported", "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

func (s *planService) GetStats(ctx context.Context, req domain.PlanRangeRequest) ([]domain.DailyTotals, error) {
	within, err := calendar.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.planRepository.GetEntries(ctx, within)
	if err != nil {
		return nil, err
	}
	cookbook, err := s.cookbook(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.planRepository.Products(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.planRepository.FamilyMembers(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entities.FamilyMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return DailyStats(entries, cookbook, nutrition.NewCatalog(products), byID), nil
}

// build turns a request into a new entry. Without a date, the day name is
// resolved within the week of ref.
func (s *planService) build(ctx context.Context, req domain.PlanEntryRequest, cookbook nutrition.Cookbook, ref time.Time) (*entities.WeeklyPlanEntry, error) {
	var date time.Time
	switch {
	case req.Date != "":
		parsed, err := calendar.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	case strings.TrimSpace(req.DayOfWeek) != "":
		date = calendar.DateForDay(req.DayOfWeek, ref)
	default:
		return nil, domain.ErrMissingPlanDate
	}

	recipeID, err := s.recipeID(req.RecipeID, cookbook)
	if err != nil {
		return nil, err
	}
	member, err := s.member(ctx, req.FamilyMemberID)
	if err != nil {
		return nil, err
	}

	entry := &entities.WeeklyPlanEntry{
		ID:             uuid.New(),
		DayOfWeek:      req.DayOfWeek,
		MealType:       req.MealType,
		RecipeID:       recipeID,
		Portions:       max(req.Portions, 1),
		FamilyMemberID: member.Ptr(),
	}
	if entry.DayOfWeek == "" {
		entry.DayOfWeek = calendar.DayName(date)
	}
	entry.SetDate(date)
	return entry, nil
}

func (s *planService) recipeID(raw string, cookbook nutrition.Cookbook) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	if _, ok := cookbook.Recipe(id); !ok {
		return uuid.Nil, domain.NewNotFound("recipe", id)
	}
	return id, nil
}

func (s *planService) member(ctx context.Context, raw *string) (MemberRef, error) {
	ref, err := ParseMemberRef(raw)
	if err != nil {
		return MemberRef{}, err
	}
	if id, ok := ref.ID(); ok {
		if _, err := s.planRepository.FamilyMember(ctx, id); err != nil {
			return MemberRef{}, err
		}
	}
	return ref, nil
}

func (s *planService) find(ctx context.Context, id string) (*entities.WeeklyPlanEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	entry, err := s.planRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *planService) cookbook(ctx context.Context) (nutrition.Cookbook, error) {
	recipes, err := s.planRepository.Recipes(ctx)
	if err != nil {
		return nil, err
	}
	return nutrition.NewCookbook(recipes), nil
}

func (s *planService) currentWeek() calendar.Range {
	monday, sunday := calendar.WeekBounds(s.now())
	return calendar.Between(monday, sunday)
}

func ToEntry(e *entities.WeeklyPlanEntry, recipes nutrition.RecipeLookup) domain.PlanEntry {
	res := domain.PlanEntry{
		ID:             e.ID.String(),
		DayOfWeek:      e.DayOfWeek,
		MealType:       e.MealType,
		RecipeID:       e.RecipeID.String(),
		Portions:       e.Portions,
		FamilyMemberID: MemberRefOf(e.FamilyMemberID).StringPtr(),
	}
	if date, ok := e.PlannedOn(); ok {
		res.Date = date.Format(domain.DateLayout)
	}
	if r, ok := recipes.Recipe(e.RecipeID); ok {
		res.RecipeTitle = r.Title
	}
	return res
}

func ToEntries(entries []*entities.WeeklyPlanEntry, recipes nutrition.RecipeLookup) []domain.PlanEntry {
	res := make([]domain.PlanEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, ToEntry(e, recipes))
	}
	return res
}
