//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-scheduler/internal/pkg/config"
	"booking-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject uuid.UUID, role jwt.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) Operator(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), jwt.RoleOperator)
}

func (h *JWTHelper) Viewer(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), jwt.RoleViewer)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject uuid.UUID, role jwt.Role) string {
	t.Helper()
	// well past the validator's clock-skew leeway
	token, err := jwt.NewService(h.cfg.Secret, -time.Hour).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
