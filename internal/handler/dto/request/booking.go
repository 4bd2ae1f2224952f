package request

import (
	"strings"
	"time"

	"booking-scheduler/internal/pkg/patch"
	"booking-scheduler/internal/usecase/commands"
	"booking-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClientID         uuid.UUID  `json:"client_id" binding:"required"`
	ServiceID        uuid.UUID  `json:"service_id" binding:"required"`
	LocationID       uuid.UUID  `json:"location_id" binding:"required"`
	PractitionerID   *uuid.UUID `json:"practitioner_id,omitempty"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	StartTime        time.Time  `json:"start_time" binding:"required"`
	EndTime          time.Time  `json:"end_time" binding:"required"`
	Notes            string     `json:"notes,omitempty" binding:"max=2000"`
	PaymentReference *string    `json:"payment_reference,omitempty" binding:"omitempty,max=255"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ClientID:         r.ClientID,
		ServiceID:        r.ServiceID,
		LocationID:       r.LocationID,
		PractitionerID:   nonNilID(r.PractitionerID),
		RoomID:           nonNilID(r.RoomID),
		Start:            r.StartTime,
		End:              r.EndTime,
		Notes:            strings.TrimSpace(r.Notes),
		PaymentReference: trimmedOrNil(r.PaymentReference),
	}
}

// UpdateBookingRequest is a partial update; absent fields keep their value.
type UpdateBookingRequest struct {
	PractitionerID   *uuid.UUID `json:"practitioner_id,omitempty"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	Notes            *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	PaymentReference *string    `json:"payment_reference,omitempty" binding:"omitempty,max=255"`
}

func (r UpdateBookingRequest) ToParams() commands.UpdateBookingParams {
	return commands.UpdateBookingParams{
		PractitionerID:   r.PractitionerID,
		RoomID:           r.RoomID,
		Start:            r.StartTime,
		End:              r.EndTime,
		Notes:            r.Notes,
		PaymentReference: r.PaymentReference,
	}
}

func (r UpdateBookingRequest) IsEmpty() bool {
	return r.PractitionerID == nil && r.RoomID == nil && r.StartTime == nil &&
		r.EndTime == nil && r.Notes == nil && r.PaymentReference == nil
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason,omitempty" binding:"max=500"`
}

// AssignPractitionerRequest without practitioner_id picks the best free practitioner.
type AssignPractitionerRequest struct {
	PractitionerID *uuid.UUID `json:"practitioner_id"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" binding:"max=500"`
}

type ListBookingsQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type ResourceBookingsQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type ClientBookingsQuery struct {
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

func (q ClientBookingsQuery) PageLimit() int {
	return queries.ValidateLimit(patch.Coalesce(q.Limit, 0))
}

func (q ClientBookingsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type AvailabilityQuery struct {
	Kind      string    `form:"kind" binding:"required,oneof=practitioner room"`
	ServiceID string    `form:"service_id" binding:"required,uuid"`
	Start     time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End       time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ResourceAvailabilityQuery struct {
	Kind  string    `form:"kind" binding:"required,oneof=practitioner room"`
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func nonNilID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
