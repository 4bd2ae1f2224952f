//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/repository"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/tests/common/builder"
	repositorymock "booking-scheduler/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking inserted",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: overlapping booking rejected by exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				overlap := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_room_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(overlap)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown client rejected by foreign key",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				fk := &pgconn.PgError{Code: "23503", ConstraintName: "bookings_client_id_fkey"}
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: connection failure",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			tc.setupMock(mockQueries)

			repo := repository.NewBookingRepository(mockQueries, &pgxpool.Pool{})
			err := repo.Create(ctx, builder.NewBookingBuilder().MustBuildDomain())

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Update Booking Tests
// =============================================================================

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	bk := builder.NewBookingBuilder().MustBuildDomain()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row updated",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
						assert.Equal(t, bk.ID(), arg.ID)
						assert.Equal(t, "confirmed", arg.Status)
						return 1, nil
					})
			},
		},
		{
			name: "error: no row matched",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: moved onto a taken slot",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().UpdateBooking(ctx, gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23P01"})
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			tc.setupMock(mockQueries)

			repo := repository.NewBookingRepository(mockQueries, &pgxpool.Pool{})
			err := repo.Update(ctx, bk)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
