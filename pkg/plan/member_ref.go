package plan

import (
	"Meal-Planner/domain"

	"github.com/google/uuid"
)

// MemberRef is either the shared slot or one family member. The zero value
// is Shared, and values are comparable so they can key maps.
type MemberRef struct {
	id     uuid.UUID
	person bool
}

func Shared() MemberRef {
	return MemberRef{}
}

func Person(id uuid.UUID) MemberRef {
	return MemberRef{id: id, person: true}
}

// MemberRefOf maps a nullable family_member_id column.
func MemberRefOf(id *uuid.UUID) MemberRef {
	if id == nil {
		return Shared()
	}
	return Person(*id)
}

// ParseMemberRef maps an optional request field; nil and "" mean shared.
func ParseMemberRef(id *string) (MemberRef, error) {
	if id == nil || *id == "" {
		return Shared(), nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return MemberRef{}, domain.ErrParseUUID
	}
	return Person(parsed), nil
}

func (m MemberRef) IsShared() bool {
	return !m.person
}

func (m MemberRef) ID() (uuid.UUID, bool) {
	return m.id, m.person
}

// Ptr is the value stored in family_member_id.
func (m MemberRef) Ptr() *uuid.UUID {
	if !m.person {
		return nil
	}
	id := m.id
	return &id
}

func (m MemberRef) StringPtr() *string {
	if !m.person {
		return nil
	}
	s := m.id.String()
	return &s
}

func (m MemberRef) String() string {
	if !m.person {
		return "shared"
	}
	return m.id.String()
}
