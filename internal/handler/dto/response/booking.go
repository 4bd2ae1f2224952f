package response

import (
	"time"

	"booking-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	ClientID           uuid.UUID  `json:"client_id"`
	ClientName         string     `json:"client_name"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	LocationID         uuid.UUID  `json:"location_id"`
	PractitionerID     *uuid.UUID `json:"practitioner_id,omitempty"`
	PractitionerName   *string    `json:"practitioner_name,omitempty"`
	RoomID             *uuid.UUID `json:"room_id,omitempty"`
	RoomName           *string    `json:"room_name,omitempty"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	Status             string     `json:"status"`
	ServicePrice       string     `json:"service_price"`
	Deposit            string     `json:"deposit"`
	Discount           string     `json:"discount"`
	CreditsApplied     string     `json:"credits_applied"`
	Total              string     `json:"total"`
	Notes              *string    `json:"notes,omitempty"`
	PaymentReference   *string    `json:"payment_reference,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClientID       uuid.UUID  `json:"client_id"`
	ServiceID      uuid.UUID  `json:"service_id"`
	ServiceName    string     `json:"service_name"`
	PractitionerID *uuid.UUID `json:"practitioner_id,omitempty"`
	RoomID         *uuid.UUID `json:"room_id,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	Status         string     `json:"status"`
	Total          string     `json:"total"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

type ResourceResponse struct {
	ID           uuid.UUID `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Kind       string    `json:"kind"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Available  bool      `json:"available"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	res := &BookingListResponse{Items: make([]*BookingListItemResponse, 0, len(items))}
	if err := copier.CopyWithOption(&res.Items, items, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*BookingListItemResponse{}
	}
	if next != nil && next.After != "" {
		after := next.After
		res.NextCursor = &after
	}
	return res, nil
}

func FromResourceViews(views []*queries.ResourceView) ([]*ResourceResponse, error) {
	res := make([]*ResourceResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:           v.ID,
		Kind:         v.Kind,
		Name:         v.Name,
		DisplayOrder: v.DisplayOrder,
	}
}
