package memstore

import (
	"log/slog"
	"sync"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/domain/service"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is the in-process storage driver. Committed state lives behind mu;
// transactions buffer their writes and publish them on commit.
type Store struct {
	mu          sync.RWMutex
	clients     map[uuid.UUID]string
	services    map[uuid.UUID]*service.Service
	resources   map[uuid.UUID]*resource.Resource
	eligibility map[uuid.UUID][]uuid.UUID
	schedules   map[uuid.UUID]*schedule.Schedule
	bookings    map[uuid.UUID]booking.Snapshot
	idempotency map[uuid.UUID]shared.IdempotencyRecord

	locks  *keyedLocks
	logger *slog.Logger
}

func New() *Store {
	return &Store{
		clients:     make(map[uuid.UUID]string),
		services:    make(map[uuid.UUID]*service.Service),
		resources:   make(map[uuid.UUID]*resource.Resource),
		eligibility: make(map[uuid.UUID][]uuid.UUID),
		schedules:   make(map[uuid.UUID]*schedule.Schedule),
		bookings:    make(map[uuid.UUID]booking.Snapshot),
		idempotency: make(map[uuid.UUID]shared.IdempotencyRecord),
		locks:       newKeyedLocks(),
		logger:      slog.Default(),
	}
}

func (s *Store) AddClient(id uuid.UUID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = name
}

func (s *Store) AddService(svc *service.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID()] = svc
}

func (s *Store) AddResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[r.ID()] = r
}

// SetEligible declares which resources, of either kind, can serve the service.
func (s *Store) SetEligible(serviceID uuid.UUID, resourceIDs ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eligibility[serviceID] = append([]uuid.UUID(nil), resourceIDs...)
}

func (s *Store) SetSchedule(sched *schedule.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sched.ResourceID()] = sched
}

// PutBooking stores a booking outside any transaction; used for fixtures.
func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b.Snapshot()
}

func (s *Store) notFound(what string) error {
	return infra.WrapRepoErr(s.logger, infra.KindNotFound, what+" not found", nil)
}
