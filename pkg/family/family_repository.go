package family

import (
	"Meal-Planner/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FamilyRepository interface {
		CreateMember(ctx context.Context, member *entities.FamilyMember) error
		UpdateMember(ctx context.Context, member *entities.FamilyMember) error
		DeleteMember(ctx context.Context, id string) error
		GetMemberByID(ctx context.Context, id string) (*entities.FamilyMember, error)
		GetMembers(ctx context.Context) ([]*entities.FamilyMember, error)
	}

	familyRepository struct {
		db *gorm.DB
	}
)

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) CreateMember(ctx context.Context, member *entities.FamilyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *familyRepository) UpdateMember(ctx context.Context, member *entities.FamilyMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// DeleteMember removes the member and turns their plan entries into shared ones.
func (r *familyRepository) DeleteMember(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.WeeklyPlanEntry{}).
			Where("family_member_id = ?", id).
			Update("family_member_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.FamilyMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *familyRepository) GetMemberByID(ctx context.Context, id string) (*entities.FamilyMember, error) {
	var member entities.FamilyMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *familyRepository) GetMembers(ctx context.Context) ([]*entities.FamilyMember, error) {
	var members []*entities.FamilyMember
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
