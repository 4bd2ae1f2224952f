package availability

import (
	"time"

	"booking-scheduler/internal/domain/calendar"
	"booking-scheduler/internal/domain/resource"
)

// Factory binds resolvers to a Reads view. Write paths build resolvers over
// the transaction's reads so checks run under the held locks.
type Factory struct {
	detector *calendar.ConflictDetector
	loc      *time.Location
}

func NewFactory(detector *calendar.ConflictDetector, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{detector: detector, loc: loc}
}

func (f *Factory) Location() *time.Location {
	return f.loc
}

func (f *Factory) Practitioners(reads Reads) *Resolver {
	return &Resolver{
		kind:         resource.KindPractitioner,
		reads:        reads,
		detector:     f.detector,
		selector:     NewLeastLoaded(reads, resource.KindPractitioner, f.loc),
		loc:          f.loc,
		workingHours: true,
	}
}

func (f *Factory) Rooms(reads Reads) *Resolver {
	return &Resolver{
		kind:     resource.KindRoom,
		reads:    reads,
		detector: f.detector,
		selector: FirstByPriority{},
		loc:      f.loc,
	}
}

func (f *Factory) For(kind resource.Kind, reads Reads) *Resolver {
	if kind == resource.KindRoom {
		return f.Rooms(reads)
	}
	return f.Practitioners(reads)
}
