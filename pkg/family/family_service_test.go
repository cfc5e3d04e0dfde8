package family

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryFamily struct {
	items []*entities.FamilyMember
}

func (m *memoryFamily) CreateMember(_ context.Context, member *entities.FamilyMember) error {
	m.items = append(m.items, member)
	return nil
}

func (m *memoryFamily) UpdateMember(_ context.Context, member *entities.FamilyMember) error {
	for i, it := range m.items {
		if it.ID == member.ID {
			m.items[i] = member
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryFamily) DeleteMember(_ context.Context, id string) error {
	for i, it := range m.items {
		if it.ID.String() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryFamily) GetMemberByID(_ context.Context, id string) (*entities.FamilyMember, error) {
	for _, it := range m.items {
		if it.ID.String() == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryFamily) GetMembers(context.Context) ([]*entities.FamilyMember, error) {
	return m.items, nil
}

func TestFamilyMemberLifecycle(t *testing.T) {
	svc := NewFamilyService(&memoryFamily{})
	ctx := context.Background()

	anna, err := svc.CreateMember(ctx, domain.FamilyMemberRequest{Name: " Anna ", TgUsername: "@anna"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", anna.Name)
	assert.Equal(t, "anna", anna.TgUsername)
	assert.Equal(t, DefaultColor, anna.Color)
	assert.Equal(t, float64(DefaultMaxCalories), anna.MaxCalories)

	updated, err := svc.UpdateMember(ctx, anna.ID, domain.FamilyMemberRequest{Name: "Anna", MaxCalories: 1800, Color: "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, 1800.0, updated.MaxCalories)
	assert.Equal(t, "#ff0000", updated.Color)

	members, err := svc.GetMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)

	require.NoError(t, svc.DeleteMember(ctx, anna.ID))
	assert.ErrorIs(t, svc.DeleteMember(ctx, anna.ID), domain.ErrFamilyMemberNotFound)

	_, err = svc.UpdateMember(ctx, anna.ID, domain.FamilyMemberRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrFamilyMemberNotFound)
	_, err = svc.UpdateMember(ctx, "nope", domain.FamilyMemberRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
