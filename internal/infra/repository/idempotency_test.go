//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-scheduler/internal/infra"
	"booking-scheduler/internal/infra/repository"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	repositorymock "booking-scheduler/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_TryInsert(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	expires := time.Date(2030, 1, 8, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		affected int64
		dbErr    error
		want     bool
		wantErr  bool
	}{
		{name: "success: key reserved", affected: 1, want: true},
		{name: "success: key already present", affected: 0, want: false},
		{name: "error: database failure", dbErr: errors.New("timeout"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockQueries.EXPECT().InsertIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, key, arg.Key)
					assert.Equal(t, "hash", arg.RequestHash)
					assert.True(t, arg.ExpiresAt.Time.Equal(expires))
					return tc.affected, tc.dbErr
				})

			repo := repository.NewIdempotencyRepository(mockQueries, &pgxpool.Pool{})
			got, err := repo.TryInsert(ctx, key, "hash", expires)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIdempotencyRepository_MarkCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("success: result recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		bookingID := uuid.New()
		mockQueries.EXPECT().CompleteIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error) {
				assert.True(t, arg.ResultBookingID.Valid)
				assert.Equal(t, [16]byte(bookingID), arg.ResultBookingID.Bytes)
				return 1, nil
			})

		repo := repository.NewIdempotencyRepository(mockQueries, &pgxpool.Pool{})
		assert.NoError(t, repo.MarkCompleted(ctx, uuid.New(), bookingID))
	})

	t.Run("error: key missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockQueries.EXPECT().CompleteIdempotencyKey(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		repo := repository.NewIdempotencyRepository(mockQueries, &pgxpool.Pool{})
		err := repo.MarkCompleted(ctx, uuid.New(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIdempotencyRepository_ClaimExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	now := time.Date(2030, 1, 8, 10, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().ClaimExpiredIdempotencyKey(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error) {
			assert.True(t, arg.Now.Time.Equal(now))
			assert.True(t, arg.ExpiresAt.Time.Equal(now.Add(24*time.Hour)))
			return 1, nil
		})

	repo := repository.NewIdempotencyRepository(mockQueries, &pgxpool.Pool{})
	claimed, err := repo.ClaimExpired(ctx, uuid.New(), "hash", now, now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockQueries.EXPECT().DeleteExpiredIdempotencyKeys(ctx, gomock.Any(), gomock.Any()).Return(int64(3), nil)

	repo := repository.NewIdempotencyRepository(mockQueries, &pgxpool.Pool{})
	n, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
