//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"booking-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	start := time.Date(2030, 1, 7, 10, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	gotStart, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(start, id))
	require.NoError(t, err)
	assert.Equal(t, start.Truncate(time.Microsecond), gotStart)
	assert.Equal(t, id, gotID)

	for name, cursor := range map[string]string{
		"not base64":    "%%%",
		"old version":   base64.RawURLEncoding.EncodeToString([]byte("v1:1-" + id.String())),
		"missing id":    base64.RawURLEncoding.EncodeToString([]byte("s1:12345")),
		"bad timestamp": base64.RawURLEncoding.EncodeToString([]byte("s1:abc_" + id.String())),
		"bad id":        base64.RawURLEncoding.EncodeToString([]byte("s1:12345_nope")),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
