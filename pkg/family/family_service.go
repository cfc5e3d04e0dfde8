package family

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultColor       = "#3b82f6"
	DefaultMaxCalories = 2000
)

type (
	FamilyService interface {
		CreateMember(ctx context.Context, req domain.FamilyMemberRequest) (domain.FamilyMember, error)
		UpdateMember(ctx context.Context, id string, req domain.FamilyMemberRequest) (domain.FamilyMember, error)
		DeleteMember(ctx context.Context, id string) error
		GetMembers(ctx context.Context) ([]domain.FamilyMember, error)
	}

	familyService struct {
		familyRepository FamilyRepository
	}
)

func NewFamilyService(familyRepository FamilyRepository) FamilyService {
	return &familyService{familyRepository: familyRepository}
}

func (s *familyService) CreateMember(ctx context.Context, req domain.FamilyMemberRequest) (domain.FamilyMember, error) {
	member := &entities.FamilyMember{ID: uuid.New()}
	apply(member, req)
	if err := s.familyRepository.CreateMember(ctx, member); err != nil {
		return domain.FamilyMember{}, err
	}
	return ToResponse(member), nil
}

func (s *familyService) UpdateMember(ctx context.Context, id string, req domain.FamilyMemberRequest) (domain.FamilyMember, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FamilyMember{}, domain.ErrParseUUID
	}
	member, err := s.familyRepository.GetMemberByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FamilyMember{}, domain.ErrFamilyMemberNotFound
		}
		return domain.FamilyMember{}, err
	}

	apply(member, req)
	if err := s.familyRepository.UpdateMember(ctx, member); err != nil {
		return domain.FamilyMember{}, err
	}
	return ToResponse(member), nil
}

func (s *familyService) DeleteMember(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.familyRepository.DeleteMember(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFamilyMemberNotFound
		}
		return err
	}
	return nil
}

func (s *familyService) GetMembers(ctx context.Context) ([]domain.FamilyMember, error) {
	members, err := s.familyRepository.GetMembers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.FamilyMember, 0, len(members))
	for _, m := range members {
		res = append(res, ToResponse(m))
	}
	return res, nil
}

func apply(member *entities.FamilyMember, req domain.FamilyMemberRequest) {
	member.Name = strings.TrimSpace(req.Name)
	member.TgUsername = strings.TrimPrefix(strings.TrimSpace(req.TgUsername), "@")
	member.Email = strings.TrimSpace(req.Email)
	member.Color = req.Color
	if member.Color == "" {
		member.Color = DefaultColor
	}
	member.MaxCalories = req.MaxCalories
	if member.MaxCalories <= 0 {
		member.MaxCalories = DefaultMaxCalories
	}
	member.MaxProteins = req.MaxProteins
	member.MaxFats = req.MaxFats
	member.MaxCarbs = req.MaxCarbs
}

func ToResponse(m *entities.FamilyMember) domain.FamilyMember {
	return domain.FamilyMember{
		ID:          m.ID.String(),
		Name:        m.Name,
		TgUsername:  m.TgUsername,
		Email:       m.Email,
		Color:       m.Color,
		MaxCalories: m.MaxCalories,
		MaxProteins: m.MaxProteins,
		MaxFats:     m.MaxFats,
		MaxCarbs:    m.MaxCarbs,
	}
}
