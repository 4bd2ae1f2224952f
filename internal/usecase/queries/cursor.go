package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"booking-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorPrefix = "s1:"
)

// Cursor is an opaque keyset position over (start_time, id).
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microsecond precision, the resolution of timestamptz,
// so the keyset comparison is exact.
func EncodeAfterCursor(start time.Time, id uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(start.UnixMicro(), 10) + "_" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}
	payload, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unknown cursor version")
	}
	micros, idText, ok := strings.Cut(payload, "_")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("malformed cursor")
	}
	usec, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "malformed cursor timestamp")
	}
	id, err := uuid.Parse(idText)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "malformed cursor id")
	}
	return time.UnixMicro(usec).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
