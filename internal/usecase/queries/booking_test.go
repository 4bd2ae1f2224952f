//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"booking-scheduler/internal/infra/memstore"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/usecase/queries"
	"booking-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededClinic(t *testing.T, starts ...time.Time) (*builder.Clinic, []uuid.UUID) {
	t.Helper()
	clinic := builder.NewClinicBuilder().WithPractitioner("P", 1, "00:00", "24:00").WithRoom("R", 1).Build()
	ids := make([]uuid.UUID, 0, len(starts))
	for _, start := range starts {
		b := clinic.Booking().WithSlot(start, start.Add(30*time.Minute)).MustBuildDomain()
		clinic.Store.PutBooking(b)
		ids = append(ids, b.ID())
	}
	return clinic, ids
}

func TestBookingQueries_ListByDate(t *testing.T) {
	ctx := context.Background()
	clinic, ids := seededClinic(t,
		builder.At(9, 0),
		builder.At(23, 30),
		builder.At(0, 0).AddDate(0, 0, 1),
	)
	q := queries.NewBookingQueries(memstore.NewReadStore(clinic.Store), time.UTC)

	items, err := q.ListByDate(ctx, "2030-01-07")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, ids[0], items[0].ID)
	assert.Equal(t, ids[1], items[1].ID)

	items, err = q.ListByDateRange(ctx, "2030-01-07", "2030-01-08")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	items, err = q.ListByPractitionerDate(ctx, clinic.Practitioners[0], "2030-01-08")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = q.ListByRoomDate(ctx, uuid.New(), "2030-01-07")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBookingQueries_DatesUseScheduleTimezone(t *testing.T) {
	ctx := context.Background()
	// 23:30 UTC on the 7th is already the 8th in Tokyo
	clinic, _ := seededClinic(t, builder.At(23, 30))
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	q := queries.NewBookingQueries(memstore.NewReadStore(clinic.Store), tokyo)

	items, err := q.ListByDate(ctx, "2030-01-08")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBookingQueries_RangeValidation(t *testing.T) {
	ctx := context.Background()
	clinic, _ := seededClinic(t)
	q := queries.NewBookingQueries(memstore.NewReadStore(clinic.Store), time.UTC)

	tests := []struct {
		name     string
		from, to string
	}{
		{"malformed", "07/01/2030", "2030-01-08"},
		{"reversed", "2030-01-08", "2030-01-07"},
		{"too long", "2030-01-01", "2030-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.ListByDateRange(ctx, tt.from, tt.to)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestBookingQueries_ListByClientPages(t *testing.T) {
	ctx := context.Background()
	starts := make([]time.Time, 5)
	for i := range starts {
		starts[i] = builder.At(9+i, 0)
	}
	clinic, ids := seededClinic(t, starts...)
	q := queries.NewBookingQueries(memstore.NewReadStore(clinic.Store), time.UTC)

	page1, cursor, err := q.ListByClient(ctx, clinic.ClientID, nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, cursor)
	assert.Equal(t, ids[0], page1[0].ID)

	page2, cursor, err := q.ListByClient(ctx, clinic.ClientID, cursor, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotNil(t, cursor)
	assert.Equal(t, ids[2], page2[0].ID)

	page3, cursor, err := q.ListByClient(ctx, clinic.ClientID, cursor, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Nil(t, cursor)
	assert.Equal(t, ids[4], page3[0].ID)
}

func TestBookingQueries_ListByClientBadCursor(t *testing.T) {
	clinic, _ := seededClinic(t)
	q := queries.NewBookingQueries(memstore.NewReadStore(clinic.Store), time.UTC)

	_, _, err := q.ListByClient(context.Background(), clinic.ClientID, &queries.Cursor{After: "not-a-cursor"}, 10)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestBookingQueries_GetByIDNotFound(t *testing.T) {
	clinic, _ := seededClinic(t)
	q := queries.NewBookingQueries(memstore.NewReadStore(clinic.Store), time.UTC)

	_, err := q.GetByID(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
}
