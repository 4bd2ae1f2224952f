package memstore

import (
	"fmt"
	"os"
	"strings"
	"time"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Seed is the reference data the memory driver starts with.
type Seed struct {
	Clients   []SeedClient   `yaml:"clients"`
	Resources []SeedResource `yaml:"resources"`
	Services  []SeedService  `yaml:"services"`
	Schedules []SeedSchedule `yaml:"schedules"`
}

type SeedClient struct {
	ID   uuid.UUID `yaml:"id"`
	Name string    `yaml:"name"`
}

type SeedResource struct {
	ID           uuid.UUID `yaml:"id"`
	Kind         string    `yaml:"kind"`
	Name         string    `yaml:"name"`
	DisplayOrder int       `yaml:"display_order"`
	Inactive     bool      `yaml:"inactive"`
}

type SeedService struct {
	ID              uuid.UUID   `yaml:"id"`
	Name            string      `yaml:"name"`
	Price           string      `yaml:"price"`
	DurationMinutes int         `yaml:"duration_minutes"`
	Inactive        bool        `yaml:"inactive"`
	Resources       []uuid.UUID `yaml:"resources"`
}

type SeedWindow struct {
	Day       string `yaml:"day,omitempty"`
	Date      string `yaml:"date,omitempty"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	Available *bool  `yaml:"available"`
}

type SeedSchedule struct {
	ResourceID uuid.UUID    `yaml:"resource_id"`
	Weekly     []SeedWindow `yaml:"weekly"`
	Overrides  []SeedWindow `yaml:"overrides"`
}

func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// Apply loads the seed into the store.
func (s *Store) Apply(seed *Seed) error {
	for _, c := range seed.Clients {
		s.AddClient(c.ID, c.Name)
	}

	for _, r := range seed.Resources {
		res, err := resource.NewResource(r.ID, resource.Kind(r.Kind), r.Name, r.DisplayOrder)
		if err != nil {
			return fmt.Errorf("resource %s: %w", r.ID, err)
		}
		if r.Inactive {
			res = resource.ReconstructResource(res.ID(), res.Kind(), res.Name(), res.DisplayOrder(), false, time.Time{}, time.Time{})
		}
		s.AddResource(res)
	}

	for _, sv := range seed.Services {
		price, err := decimal.NewFromString(sv.Price)
		if err != nil {
			return fmt.Errorf("service %s price: %w", sv.ID, err)
		}
		svc, err := service.NewService(sv.ID, sv.Name, price, sv.DurationMinutes)
		if err != nil {
			return fmt.Errorf("service %s: %w", sv.ID, err)
		}
		if sv.Inactive {
			svc = service.ReconstructService(svc.ID(), svc.Name(), svc.Price(), svc.DurationMin(), false, time.Time{}, time.Time{})
		}
		s.AddService(svc)
		s.SetEligible(sv.ID, sv.Resources...)
	}

	for _, sc := range seed.Schedules {
		sched := schedule.New(sc.ResourceID)
		for _, w := range sc.Weekly {
			day, err := parseWeekday(w.Day)
			if err != nil {
				return err
			}
			win, err := w.window()
			if err != nil {
				return fmt.Errorf("schedule %s %s: %w", sc.ResourceID, w.Day, err)
			}
			sched.SetWeekly(day, win)
		}
		for _, w := range sc.Overrides {
			win, err := w.window()
			if err != nil {
				return fmt.Errorf("schedule %s %s: %w", sc.ResourceID, w.Date, err)
			}
			if err := sched.SetOverride(w.Date, win); err != nil {
				return fmt.Errorf("schedule %s override date: %w", sc.ResourceID, err)
			}
		}
		s.SetSchedule(sched)
	}
	return nil
}

func (w SeedWindow) window() (schedule.Window, error) {
	available := w.Available == nil || *w.Available
	if !available && w.Start == "" && w.End == "" {
		return schedule.Closed(), nil
	}
	start, err := schedule.ParseTimeOfDay(w.Start)
	if err != nil {
		return schedule.Window{}, err
	}
	end, err := schedule.ParseTimeOfDay(w.End)
	if err != nil {
		return schedule.Window{}, err
	}
	return schedule.NewWindow(start, end, available)
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) || strings.EqualFold(d.String()[:3], s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
