//go:build unit || e2e

package builder

import (
	"time"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/domain/service"
	"booking-scheduler/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clinic is a seeded in-memory store: one client, one service, and whatever
// practitioners and rooms the builder added, all eligible for the service.
type Clinic struct {
	Store         *memstore.Store
	ClientID      uuid.UUID
	ServiceID     uuid.UUID
	LocationID    uuid.UUID
	Practitioners []uuid.UUID
	Rooms         []uuid.UUID
}

type ClinicBuilder struct {
	price         decimal.Decimal
	serviceActive bool
	practitioners []practitionerSpec
	rooms         []roomSpec
}

type practitionerSpec struct {
	name  string
	order int
	hours map[time.Weekday][2]string
}

type roomSpec struct {
	name   string
	order  int
	active bool
}

func NewClinicBuilder() *ClinicBuilder {
	return &ClinicBuilder{price: decimal.NewFromInt(80), serviceActive: true}
}

func (b *ClinicBuilder) WithPrice(price decimal.Decimal) *ClinicBuilder {
	b.price = price
	return b
}

func (b *ClinicBuilder) WithInactiveService() *ClinicBuilder {
	b.serviceActive = false
	return b
}

// WithPractitioner adds a practitioner working from-to on every weekday Monday..Friday.
func (b *ClinicBuilder) WithPractitioner(name string, order int, from, to string) *ClinicBuilder {
	hours := make(map[time.Weekday][2]string)
	for d := time.Monday; d <= time.Friday; d++ {
		hours[d] = [2]string{from, to}
	}
	b.practitioners = append(b.practitioners, practitionerSpec{name: name, order: order, hours: hours})
	return b
}

func (b *ClinicBuilder) WithRoom(name string, order int) *ClinicBuilder {
	b.rooms = append(b.rooms, roomSpec{name: name, order: order, active: true})
	return b
}

func (b *ClinicBuilder) WithInactiveRoom(name string, order int) *ClinicBuilder {
	b.rooms = append(b.rooms, roomSpec{name: name, order: order})
	return b
}

func (b *ClinicBuilder) Build() *Clinic {
	store := memstore.New()
	c := &Clinic{
		Store:      store,
		ClientID:   uuid.New(),
		ServiceID:  uuid.New(),
		LocationID: uuid.New(),
	}
	store.AddClient(c.ClientID, "Alex Morgan")

	svc, err := service.NewService(c.ServiceID, "Consultation", b.price, 60)
	if err != nil {
		panic(err)
	}
	if !b.serviceActive {
		svc = service.ReconstructService(svc.ID(), svc.Name(), svc.Price(), svc.DurationMin(), false, time.Time{}, time.Time{})
	}
	store.AddService(svc)

	var eligible []uuid.UUID
	for _, p := range b.practitioners {
		id := uuid.New()
		res, err := resource.NewResource(id, resource.KindPractitioner, p.name, p.order)
		if err != nil {
			panic(err)
		}
		store.AddResource(res)

		sched := schedule.New(id)
		for day, h := range p.hours {
			sched.SetWeekly(day, mustWindow(h[0], h[1]))
		}
		store.SetSchedule(sched)

		c.Practitioners = append(c.Practitioners, id)
		eligible = append(eligible, id)
	}
	for _, r := range b.rooms {
		id := uuid.New()
		res := resource.ReconstructResource(id, resource.KindRoom, r.name, r.order, r.active, time.Time{}, time.Time{})
		store.AddResource(res)
		c.Rooms = append(c.Rooms, id)
		eligible = append(eligible, id)
	}
	store.SetEligible(c.ServiceID, eligible...)
	return c
}

// Booking returns a booking builder pre-filled with this clinic's references.
func (c *Clinic) Booking() *BookingBuilder {
	bb := NewBookingBuilder()
	bb.ClientID = c.ClientID
	bb.ServiceID = c.ServiceID
	bb.LocationID = c.LocationID
	bb.PractitionerID = nil
	bb.RoomID = nil
	if len(c.Practitioners) > 0 {
		id := c.Practitioners[0]
		bb.PractitionerID = &id
	}
	if len(c.Rooms) > 0 {
		id := c.Rooms[0]
		bb.RoomID = &id
	}
	return bb
}

func mustWindow(from, to string) schedule.Window {
	start, err := schedule.ParseTimeOfDay(from)
	if err != nil {
		panic(err)
	}
	end, err := schedule.ParseTimeOfDay(to)
	if err != nil {
		panic(err)
	}
	w, err := schedule.NewWindow(start, end, true)
	if err != nil {
		panic(err)
	}
	return w
}

// At returns the given wall-clock time on BaseTime's date, in UTC.
func At(hour, minute int) time.Time {
	return time.Date(BaseTime.Year(), BaseTime.Month(), BaseTime.Day(), hour, minute, 0, 0, time.UTC)
}
