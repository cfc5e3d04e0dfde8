package plan

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/pkg/calendar"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlanRepository interface {
		Store
		GetEntries(ctx context.Context, within calendar.Range) ([]*entities.WeeklyPlanEntry, error)
		GetEntryByID(ctx context.Context, id string) (*entities.WeeklyPlanEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.WeeklyPlanEntry) error
		DeleteEntry(ctx context.Context, id string) error
		DeleteRange(ctx context.Context, within calendar.Range) (int64, error)
		ReplaceRange(ctx context.Context, within calendar.Range, entries []*entities.WeeklyPlanEntry) error
		// Transaction runs fn against a store bound to one database transaction.
		Transaction(ctx context.Context, fn func(store Store) error) error
	}

	planRepository struct {
		db *gorm.DB
	}
)

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Transaction(ctx context.Context, fn func(store Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&planRepository{db: tx})
	})
}

func inRange(q *gorm.DB, within calendar.Range) *gorm.DB {
	if within.Start != nil {
		q = q.Where("date >= ?", within.Start.Format(domain.DateLayout))
	}
	if within.End != nil {
		q = q.Where("date <= ?", within.End.Format(domain.DateLayout))
	}
	return q
}

func forMember(q *gorm.DB, member MemberRef) *gorm.DB {
	if id, ok := member.ID(); ok {
		return q.Where("family_member_id = ?", id)
	}
	return q.Where("family_member_id IS NULL")
}

// GetEntries returns entries ordered by date, then creation time.
func (r *planRepository) GetEntries(ctx context.Context, within calendar.Range) ([]*entities.WeeklyPlanEntry, error) {
	var entries []*entities.WeeklyPlanEntry
	q := inRange(r.db.WithContext(ctx).Model(&entities.WeeklyPlanEntry{}), within)
	if err := q.Order("date ASC").Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *planRepository) GetEntryByID(ctx context.Context, id string) (*entities.WeeklyPlanEntry, error) {
	var entry entities.WeeklyPlanEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *planRepository) CreateEntry(ctx context.Context, entry *entities.WeeklyPlanEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *planRepository) UpdateEntry(ctx context.Context, entry *entities.WeeklyPlanEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *planRepository) DeleteEntry(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.WeeklyPlanEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRange removes every entry in the range; an unbounded range clears the plan.
func (r *planRepository) DeleteRange(ctx context.Context, within calendar.Range) (int64, error) {
	q := inRange(r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}), within)
	res := q.Delete(&entities.WeeklyPlanEntry{})
	return res.RowsAffected, res.Error
}

func (r *planRepository) ReplaceRange(ctx context.Context, within calendar.Range, entries []*entities.WeeklyPlanEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := inRange(tx.Session(&gorm.Session{AllowGlobalUpdate: true}), within)
		if err := q.Delete(&entities.WeeklyPlanEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *planRepository) SlotOccupied(ctx context.Context, date time.Time, mealType string, member MemberRef) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&entities.WeeklyPlanEntry{}).
		Where("date = ? AND meal_type = ?", date.Format(domain.DateLayout), mealType)
	if err := forMember(q, member).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *planRepository) EntriesOn(ctx context.Context, date time.Time, member MemberRef) ([]*entities.WeeklyPlanEntry, error) {
	var entries []*entities.WeeklyPlanEntry
	q := r.db.WithContext(ctx).Where("date = ?", date.Format(domain.DateLayout))
	if err := forMember(q, member).Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *planRepository) Recipes(ctx context.Context, categories ...string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	q := r.db.WithContext(ctx).Preload("Ingredients")
	if len(categories) > 0 {
		q = q.Where("category IN ?", categories)
	}
	if err := q.Order("title ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *planRepository) Products(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *planRepository) FamilyMembers(ctx context.Context) ([]*entities.FamilyMember, error) {
	var members []*entities.FamilyMember
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *planRepository) FamilyMember(ctx context.Context, id uuid.UUID) (*entities.FamilyMember, error) {
	var member entities.FamilyMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("family member", id)
		}
		return nil, err
	}
	return &member, nil
}
