package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidKind         = errors.New("resource kind must be practitioner or room")
	ErrNegativeOrder       = errors.New("display order cannot be negative")
)

const (
	MaxResourceNameLength = 255
)

type Kind string

const (
	KindPractitioner Kind = "practitioner"
	KindRoom         Kind = "room"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindPractitioner || k == KindRoom
}

// LockKey names the serialization key for one resource.
func LockKey(kind Kind, id uuid.UUID) string {
	return kind.String() + ":" + id.String()
}

type Resource struct {
	id           uuid.UUID
	kind         Kind
	name         string
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewResource(id uuid.UUID, kind Kind, name string, displayOrder int) (*Resource, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if displayOrder < 0 {
		return nil, ErrNegativeOrder
	}

	return &Resource{
		id:           id,
		kind:         kind,
		name:         strings.TrimSpace(name),
		displayOrder: displayOrder,
		active:       true,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	kind Kind,
	name string,
	displayOrder int,
	active bool,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:           id,
		kind:         kind,
		name:         name,
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

// Less orders by display order, then id.
func Less(a, b *Resource) bool {
	if a.displayOrder != b.displayOrder {
		return a.displayOrder < b.displayOrder
	}
	return strings.Compare(a.id.String(), b.id.String()) < 0
}

func (r *Resource) LockKey() string      { return LockKey(r.kind, r.id) }
func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Kind() Kind           { return r.kind }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) DisplayOrder() int    { return r.displayOrder }
func (r *Resource) Active() bool         { return r.active }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
