package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// EventType names a booking lifecycle transition.
type EventType string

const (
	EventBookingCreated     EventType = "booking.created"
	EventBookingUpdated     EventType = "booking.updated"
	EventBookingRescheduled EventType = "booking.rescheduled"
	EventBookingAssigned    EventType = "booking.practitioner_assigned"
	EventBookingConfirmed   EventType = "booking.confirmed"
	EventBookingCompleted   EventType = "booking.completed"
	EventBookingCancelled   EventType = "booking.cancelled"
	EventBookingNoShow      EventType = "booking.no_show"
	EventBookingDeleted     EventType = "booking.deleted"
)

type BookingEvent struct {
	ID             uuid.UUID  `json:"id"`
	Type           EventType  `json:"type"`
	BookingID      uuid.UUID  `json:"booking_id"`
	ClientID       uuid.UUID  `json:"client_id"`
	PractitionerID *uuid.UUID `json:"practitioner_id,omitempty"`
	RoomID         *uuid.UUID `json:"room_id,omitempty"`
	Status         string     `json:"status"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Reason         string     `json:"reason,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}
