package converter

import (
	"fmt"

	"booking-scheduler/internal/domain/booking"
	sqlc "booking-scheduler/internal/infra/sqlc/generated"
	"booking-scheduler/internal/pkg/pgconv"
	"booking-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	s := b.Snapshot()
	return sqlc.CreateBookingParams{
		ID:                 s.ID,
		ClientID:           s.ClientID,
		ServiceID:          s.ServiceID,
		LocationID:         s.LocationID,
		PractitionerID:     pgconv.UUIDPtrToPgtype(s.PractitionerID),
		RoomID:             pgconv.UUIDPtrToPgtype(s.RoomID),
		StartTime:          pgconv.TimeToPgtype(s.Slot.Start()),
		EndTime:            pgconv.TimeToPgtype(s.Slot.End()),
		Status:             s.Status.String(),
		ServicePrice:       pgconv.NumericFromDecimal(s.Pricing.ServicePrice.Decimal()),
		Deposit:            pgconv.NumericFromDecimal(s.Pricing.Deposit.Decimal()),
		Discount:           pgconv.NumericFromDecimal(s.Pricing.Discount.Decimal()),
		CreditsApplied:     pgconv.NumericFromDecimal(s.Pricing.CreditsApplied.Decimal()),
		Total:              pgconv.NumericFromDecimal(s.Pricing.Total.Decimal()),
		Notes:              s.Notes.String(),
		PaymentReference:   pgconv.StringPtrToPgtype(s.PaymentReference),
		CancellationReason: pgconv.StringPtrToPgtype(s.CancellationReason),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
		DeletedAt:          pgconv.TimePtrToPgtype(s.DeletedAt),
	}
}

// BookingToUpdateParams carries the mutable columns only; pricing is fixed at creation.
func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	s := b.Snapshot()
	return sqlc.UpdateBookingParams{
		ID:                 s.ID,
		PractitionerID:     pgconv.UUIDPtrToPgtype(s.PractitionerID),
		RoomID:             pgconv.UUIDPtrToPgtype(s.RoomID),
		StartTime:          pgconv.TimeToPgtype(s.Slot.Start()),
		EndTime:            pgconv.TimeToPgtype(s.Slot.End()),
		Status:             s.Status.String(),
		Notes:              s.Notes.String(),
		PaymentReference:   pgconv.StringPtrToPgtype(s.PaymentReference),
		CancellationReason: pgconv.StringPtrToPgtype(s.CancellationReason),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
		DeletedAt:          pgconv.TimePtrToPgtype(s.DeletedAt),
	}
}

func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	status, ok := booking.ParseStatus(row.Status)
	if !ok {
		return nil, fmt.Errorf("unknown booking status %q", row.Status)
	}
	slot, err := booking.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	pricing, err := pricingFromColumns(row.ServicePrice, row.Deposit, row.Discount, row.CreditsApplied, row.Total)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:                 row.ID,
		ClientID:           row.ClientID,
		ServiceID:          row.ServiceID,
		LocationID:         row.LocationID,
		PractitionerID:     pgconv.UUIDPtrFromPgtype(row.PractitionerID),
		RoomID:             pgconv.UUIDPtrFromPgtype(row.RoomID),
		Slot:               slot,
		Status:             status,
		Pricing:            pricing,
		Notes:              booking.NewNote(row.Notes),
		PaymentReference:   pgconv.StringPtrFromPgtype(row.PaymentReference),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		DeletedAt:          pgconv.TimePtrFromPgtype(row.DeletedAt),
	}), nil
}

func pricingFromColumns(servicePrice, deposit, discount, credits, total pgtype.Numeric) (booking.Pricing, error) {
	cols := []pgtype.Numeric{servicePrice, deposit, discount, credits, total}
	money := make([]booking.Money, len(cols))
	for i, c := range cols {
		d, err := pgconv.DecimalFromNumeric(c)
		if err != nil {
			return booking.Pricing{}, err
		}
		money[i] = booking.NewMoney(d)
	}
	return booking.Pricing{
		ServicePrice:   money[0],
		Deposit:        money[1],
		Discount:       money[2],
		CreditsApplied: money[3],
		Total:          money[4],
	}, nil
}

func moneyString(n pgtype.Numeric) (string, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return "", err
	}
	return booking.NewMoney(d).String(), nil
}

func BookingViewFromDetail(row sqlc.BookingDetail) (*queries.BookingView, error) {
	pricing, err := pricingFromColumns(row.ServicePrice, row.Deposit, row.Discount, row.CreditsApplied, row.Total)
	if err != nil {
		return nil, err
	}

	v := &queries.BookingView{
		ID:                 row.ID,
		ClientID:           row.ClientID,
		ClientName:         row.ClientName,
		ServiceID:          row.ServiceID,
		ServiceName:        row.ServiceName,
		LocationID:         row.LocationID,
		PractitionerID:     pgconv.UUIDPtrFromPgtype(row.PractitionerID),
		PractitionerName:   pgconv.StringPtrFromPgtype(row.PractitionerName),
		RoomID:             pgconv.UUIDPtrFromPgtype(row.RoomID),
		RoomName:           pgconv.StringPtrFromPgtype(row.RoomName),
		StartTime:          pgconv.TimeFromPgtype(row.StartTime),
		EndTime:            pgconv.TimeFromPgtype(row.EndTime),
		Status:             row.Status,
		ServicePrice:       pricing.ServicePrice.String(),
		Deposit:            pricing.Deposit.String(),
		Discount:           pricing.Discount.String(),
		CreditsApplied:     pricing.CreditsApplied.String(),
		Total:              pricing.Total.String(),
		PaymentReference:   pgconv.StringPtrFromPgtype(row.PaymentReference),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.Notes != "" {
		notes := row.Notes
		v.Notes = &notes
	}
	return v, nil
}

func BookingListItemsFromRows(rows []sqlc.BookingListItem) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		total, err := moneyString(row.Total)
		if err != nil {
			return nil, err
		}
		items = append(items, &queries.BookingListItem{
			ID:             row.ID,
			ClientID:       row.ClientID,
			ServiceID:      row.ServiceID,
			ServiceName:    row.ServiceName,
			PractitionerID: pgconv.UUIDPtrFromPgtype(row.PractitionerID),
			RoomID:         pgconv.UUIDPtrFromPgtype(row.RoomID),
			StartTime:      pgconv.TimeFromPgtype(row.StartTime),
			EndTime:        pgconv.TimeFromPgtype(row.EndTime),
			Status:         row.Status,
			Total:          total,
		})
	}
	return items, nil
}
