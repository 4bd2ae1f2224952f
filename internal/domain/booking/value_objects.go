package booking

import (
	"strings"
	"time"

	"booking-scheduler/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot normalizes both bounds to UTC.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return TimeSlot{}, errs.ErrInvalidTimeSlot
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(2)}
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub floors at zero.
func (m Money) Sub(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		result = decimal.Zero
	}
	return Money{amount: result}
}

func (m Money) Percent(pct decimal.Decimal) Money {
	return NewMoney(m.amount.Mul(pct).Div(decimal.NewFromInt(100)))
}

type Pricing struct {
	ServicePrice   Money
	Deposit        Money
	Discount       Money
	CreditsApplied Money
	Total          Money
}

const (
	MarkerRescheduled = "[Rescheduled]"
	MarkerCancelled   = "[Cancelled]"
)

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Append adds a marked line, leaving existing text intact.
func (n Note) Append(marker, text string) Note {
	line := strings.TrimSpace(marker + " " + strings.TrimSpace(text))
	if n.value == "" {
		return Note{value: line}
	}
	return Note{value: n.value + "\n" + line}
}
