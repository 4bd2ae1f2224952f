package converter

import (
	"fmt"
	"time"

	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/domain/schedule"
	"booking-scheduler/internal/domain/service"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ResourceFromRow(row sqlc.Resource) *resource.Resource {
	return resource.ReconstructResource(
		row.ID,
		resource.Kind(row.Kind),
		row.Name,
		int(row.DisplayOrder),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ServiceFromRow(row sqlc.Service) (*service.Service, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return service.ReconstructService(
		row.ID,
		row.Name,
		price,
		int(row.DurationMinutes),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ScheduleFromRows(resourceID uuid.UUID, weekly []sqlc.ResourceWeeklyHour, overrides []sqlc.ResourceDateOverride) (*schedule.Schedule, error) {
	sched := schedule.New(resourceID)
	for _, w := range weekly {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return nil, fmt.Errorf("invalid day of week %d", w.DayOfWeek)
		}
		win, err := windowFromMinutes(w.StartMinute, w.EndMinute, w.IsAvailable)
		if err != nil {
			return nil, err
		}
		sched.SetWeekly(time.Weekday(w.DayOfWeek), win)
	}
	for _, o := range overrides {
		date, ok := pgconv.DateKeyFromPgtype(o.OnDate)
		if !ok {
			continue
		}
		win, err := windowFromMinutes(o.StartMinute, o.EndMinute, o.IsAvailable)
		if err != nil {
			return nil, err
		}
		if err := sched.SetOverride(date, win); err != nil {
			return nil, err
		}
	}
	return sched, nil
}

func windowFromMinutes(startMin, endMin int32, available bool) (schedule.Window, error) {
	if !available {
		return schedule.Closed(), nil
	}
	start, err := schedule.NewTimeOfDay(int(startMin)/60, int(startMin)%60)
	if err != nil {
		return schedule.Window{}, err
	}
	end, err := schedule.NewTimeOfDay(int(endMin)/60, int(endMin)%60)
	if err != nil {
		return schedule.Window{}, err
	}
	return schedule.NewWindow(start, end, true)
}
