// Package pgconv converts between pgtype values and the Go types the domain uses.
// Timestamps leave the package in UTC at microsecond precision, the resolution
// PostgreSQL stores, so a value read back compares equal to the value written.
package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")

func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// nullable returns nil when valid is false, otherwise a pointer to conv(v).
func nullable[S, T any](v S, valid bool, conv func(S) T) *T {
	if !valid {
		return nil
	}
	out := conv(v)
	return &out
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return UUIDToPgtype(*id)
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	return nullable(pu.Bytes, pu.Valid, func(b [16]byte) uuid.UUID { return uuid.UUID(b) })
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	return nullable(pt.String, pt.Valid, func(s string) string { return s })
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: normalize(t), Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return TimeToPgtype(*t)
}

// TimeFromPgtype maps NULL to the zero time.
func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return normalize(pt.Time)
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	return nullable(pt.Time, pt.Valid, normalize)
}

// DateKeyFromPgtype renders a DATE column as YYYY-MM-DD; ok is false for NULL
// and infinite dates.
func DateKeyFromPgtype(pd pgtype.Date) (string, bool) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return "", false
	}
	return pd.Time.Format(dateLayout), true
}

// DateFromKey parses YYYY-MM-DD into a DATE parameter.
func DateFromKey(key string) (pgtype.Date, error) {
	t, err := time.Parse(dateLayout, key)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// DecimalFromNumeric maps NULL to zero; NaN and infinities are errors.
func DecimalFromNumeric(pn pgtype.Numeric) (decimal.Decimal, error) {
	switch {
	case !pn.Valid:
		return decimal.Zero, nil
	case pn.NaN, pn.InfinityModifier != pgtype.Finite:
		return decimal.Zero, ErrInvalidNumericValue
	default:
		return decimal.NewFromBigInt(pn.Int, pn.Exp), nil
	}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
