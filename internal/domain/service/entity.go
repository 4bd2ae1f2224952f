package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyServiceName = errors.New("service name cannot be empty")
	ErrNegativePrice    = errors.New("service price cannot be negative")
	ErrInvalidDuration  = errors.New("service duration must be positive")
)

// Service is the bookable offering. Its price is the base for booking pricing.
type Service struct {
	id          uuid.UUID
	name        string
	price       decimal.Decimal
	durationMin int
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(id uuid.UUID, name string, price decimal.Decimal, durationMin int) (*Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyServiceName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:          id,
		name:        strings.TrimSpace(name),
		price:       price,
		durationMin: durationMin,
		active:      true,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name string,
	price decimal.Decimal,
	durationMin int,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		name:        name,
		price:       price,
		durationMin: durationMin,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) Price() decimal.Decimal { return s.price }
func (s *Service) DurationMin() int       { return s.durationMin }
func (s *Service) Active() bool           { return s.active }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
func (s *Service) UpdatedAt() time.Time   { return s.updatedAt }
