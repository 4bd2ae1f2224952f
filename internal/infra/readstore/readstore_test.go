//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-scheduler/internal/domain/booking"
	"booking-scheduler/internal/domain/resource"
	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/readstore"
	"booking-scheduler/internal/infra/repository/converter"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"
	"booking-scheduler/tests/common/builder"
	readstoremock "booking-scheduler/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Booking Views
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	price := pgconv.NumericFromDecimal(decimal.RequireFromString("80.00"))
	zero := pgconv.NumericFromDecimal(decimal.Zero)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBookingViewQueries)
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, notes *string, total string)
	}{
		{
			name: "success: detail row mapped",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingDetail(ctx, gomock.Any(), id).Return(sqlc.BookingDetail{
					ID: id, ClientName: "Alex Morgan", ServiceName: "Consultation", Status: "confirmed",
					ServicePrice: price, Deposit: zero, Discount: zero, CreditsApplied: zero, Total: price,
					PractitionerName: pgtype.Text{String: "Dr. Lee", Valid: true},
				}, nil)
			},
			check: func(t *testing.T, notes *string, total string) {
				assert.Nil(t, notes)
				assert.Equal(t, "80.00", total)
			},
		},
		{
			name: "error: no row",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingDetail(ctx, gomock.Any(), id).Return(sqlc.BookingDetail{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingDetail(ctx, gomock.Any(), id).Return(sqlc.BookingDetail{}, errors.New("boom"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			tc.setupMock(mockQueries)

			view, err := readstore.NewBookingReadStore(mockQueries, nil).FindByID(ctx, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alex Morgan", view.ClientName)
			require.NotNil(t, view.PractitionerName)
			tc.check(t, view.Notes, view.Total)
		})
	}
}

func TestBookingReadStore_FindByResourceStartingBetween(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	roomID := uuid.New()
	from := builder.At(0, 0)
	to := from.Add(24 * time.Hour)

	mockQueries.EXPECT().ListRoomBookingsStartingBetween(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListRoomBookingsStartingBetweenParams) ([]sqlc.BookingListItem, error) {
			assert.Equal(t, pgconv.UUIDToPgtype(roomID), arg.ResourceID)
			assert.True(t, arg.FromTime.Time.Equal(from))
			assert.True(t, arg.ToTime.Time.Equal(to))
			return []sqlc.BookingListItem{{ID: uuid.New(), Status: "pending", Total: pgconv.NumericFromDecimal(decimal.NewFromInt(95))}}, nil
		})

	items, err := readstore.NewBookingReadStore(mockQueries, nil).FindByResourceStartingBetween(ctx, resource.KindRoom, roomID, from, to)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "95.00", items[0].Total)
}

// =============================================================================
// Catalog
// =============================================================================

func TestCatalogReadStore_ScheduleFor(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()

	t.Run("error: no hours configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogQueries(ctrl)
		mockQueries.EXPECT().ListWeeklyHours(ctx, gomock.Any(), resourceID).Return(nil, nil)
		mockQueries.EXPECT().ListDateOverrides(ctx, gomock.Any(), resourceID).Return(nil, nil)

		_, err := readstore.NewCatalogReadStore(mockQueries, nil).ScheduleFor(ctx, resourceID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success: weekly hours cover the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogQueries(ctrl)
		mockQueries.EXPECT().ListWeeklyHours(ctx, gomock.Any(), resourceID).Return([]sqlc.ResourceWeeklyHour{
			{ResourceID: resourceID, DayOfWeek: int16(time.Monday), StartMinute: 540, EndMinute: 1020, IsAvailable: true},
		}, nil)
		mockQueries.EXPECT().ListDateOverrides(ctx, gomock.Any(), resourceID).Return(nil, nil)

		sched, err := readstore.NewCatalogReadStore(mockQueries, nil).ScheduleFor(ctx, resourceID)
		require.NoError(t, err)
		assert.True(t, sched.Covers(builder.At(9, 0), builder.At(17, 0), time.UTC))
		assert.False(t, sched.Covers(builder.At(16, 30), builder.At(17, 30), time.UTC))
	})
}

func TestCatalogReadStore_ResourceByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCatalogQueries(ctrl)
	id := uuid.New()

	mockQueries.EXPECT().GetResource(ctx, gomock.Any(), sqlc.GetResourceParams{ID: id, Kind: "room"}).
		Return(sqlc.Resource{}, pgx.ErrNoRows)

	_, err := readstore.NewCatalogReadStore(mockQueries, nil).ResourceByID(ctx, resource.KindRoom, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Schedule State
// =============================================================================

func TestScheduleStateReadStore_BookingForUpdate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockScheduleStateQueries(ctrl)
	original := builder.NewBookingBuilder().MustBuildDomain()
	p := converter.BookingToCreateParams(original)

	mockQueries.EXPECT().GetBookingForUpdate(ctx, gomock.Any(), original.ID()).Return(sqlc.Booking{
		ID: p.ID, ClientID: p.ClientID, ServiceID: p.ServiceID, LocationID: p.LocationID,
		PractitionerID: p.PractitionerID, RoomID: p.RoomID, StartTime: p.StartTime, EndTime: p.EndTime,
		Status: p.Status, ServicePrice: p.ServicePrice, Deposit: p.Deposit, Discount: p.Discount,
		CreditsApplied: p.CreditsApplied, Total: p.Total, Notes: p.Notes,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}, nil)

	b, err := readstore.NewScheduleStateReadStore(mockQueries, nil).BookingForUpdate(ctx, original.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, "first visit", b.Notes().String())
}

func TestScheduleStateReadStore_ActiveBookings(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockScheduleStateQueries(ctrl)
	practitionerID := uuid.New()
	start := builder.At(10, 0)

	mockQueries.EXPECT().ListPractitionerActiveBookings(ctx, gomock.Any(), gomock.Any()).Return(
		[]sqlc.ListPractitionerActiveBookingsRow{{
			ID:        uuid.New(),
			StartTime: pgconv.TimeToPgtype(start),
			EndTime:   pgconv.TimeToPgtype(start.Add(time.Hour)),
			Status:    "completed",
		}}, nil)

	entries, err := readstore.NewScheduleStateReadStore(mockQueries, nil).
		ActiveBookings(ctx, resource.KindPractitioner, practitionerID, start.Add(-time.Hour), start.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, booking.StatusCompleted, entries[0].Status)
	assert.True(t, entries[0].IsActive())
}
