package api

import (
	"context"
	"net/http"

	reqdto "booking-scheduler/internal/handler/dto/request"
	resdto "booking-scheduler/internal/handler/dto/response"
	"booking-scheduler/internal/handler/httperr"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/usecase/commands"
	"booking-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader  = "Idempotency-Key"
	idempotentReplayedHdr = "Idempotent-Replayed"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a service slot. Practitioner and room are optional and only checked when given; assign a practitioner later with PUT /api/bookings/{id}/practitioner.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; retries with the same key and body replay the first result"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToParams(), key)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if result.IsReplayed {
		c.Header(idempotentReplayedHdr, "true")
	}
	c.Header("Location", "/api/bookings/"+result.Booking.ID.String())
	renderBooking(c, http.StatusCreated, result.Booking)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderBooking(c, http.StatusOK, view)
}

// @Summary List bookings
// @Description Bookings starting on one calendar date, or within an inclusive date range.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD"
// @Param from query string false "YYYY-MM-DD, requires to"
// @Param to query string false "YYYY-MM-DD, requires from"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if !bindQuery(c, &q) {
		return
	}

	var (
		items []*queries.BookingListItem
		err   error
	)
	switch {
	case q.Date != "":
		items, err = h.q.ListByDate(c.Request.Context(), q.Date)
	case q.From != "" && q.To != "":
		items, err = h.q.ListByDateRange(c.Request.Context(), q.From, q.To)
	default:
		httperr.AbortWithCode(c, http.StatusBadRequest, errs.ErrValidation, errs.CodeValidationFailed,
			"Either date or from and to are required", nil)
		return
	}
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderList(c, items, nil)
}

// @Summary List practitioner bookings for a day
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Practitioner ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /practitioners/{id}/bookings [get]
func (h *BookingHandler) ListByPractitioner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ResourceBookingsQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.q.ListByPractitionerDate(c.Request.Context(), id, q.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderList(c, items, nil)
}

// @Summary List room bookings for a day
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{id}/bookings [get]
func (h *BookingHandler) ListByRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ResourceBookingsQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := h.q.ListByRoomDate(c.Request.Context(), id, q.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderList(c, items, nil)
}

// @Summary List client bookings
// @Description Keyset-paginated, ordered by start time.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param limit query int false "Page size (1-200, default 20)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /clients/{id}/bookings [get]
func (h *BookingHandler) ListByClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ClientBookingsQuery
	if !bindQuery(c, &q) {
		return
	}
	items, next, err := h.q.ListByClient(c.Request.Context(), id, q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderList(c, items, next)
}

// @Summary Update booking
// @Description Partial update; changing time or resources re-runs conflict detection.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithCode(c, http.StatusBadRequest, errs.ErrValidation, errs.CodeValidationFailed, "No fields to update", nil)
		return
	}
	view, err := h.cmds.UpdateBooking(c.Request.Context(), id, req.ToParams())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderBooking(c, http.StatusOK, view)
}

// @Summary Reschedule booking
// @Description Move a booking to a new slot on the same resources.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "New slot"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RescheduleBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.RescheduleBooking(c.Request.Context(), id, req.StartTime, req.EndTime, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderBooking(c, http.StatusOK, view)
}

// @Summary Assign practitioner
// @Description Set the practitioner of a booking; without practitioner_id the best free one is chosen.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignPractitionerRequest false "Practitioner"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/practitioner [put]
func (h *BookingHandler) AssignPractitioner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AssignPractitionerRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.AssignPractitioner(c.Request.Context(), id, req.PractitionerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	renderBooking(c, http.StatusOK, view)
}

// @Summary Cancel booking
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.CancelBooking(c.Request.Context(), id, req.Reason); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm booking
// @Description Pending to confirmed.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmBooking)
}

// @Summary Complete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.CompleteBooking)
}

// @Summary Mark booking as no-show
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/no-show [post]
func (h *BookingHandler) NoShow(c *gin.Context) {
	h.transition(c, h.cmds.MarkNoShow)
}

// @Summary Delete booking
// @Description Soft delete; the booking disappears from reads and frees its slot.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	h.transition(c, h.cmds.DeleteBooking)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(context.Context, uuid.UUID) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, errs.CodeValidationFailed, "Idempotency-Key must be a UUID", nil)
		return nil, false
	}
	return &key, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, errs.CodeValidationFailed, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, errs.CodeValidationFailed, "Invalid request", err.Error())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, errs.CodeValidationFailed, "Invalid query", err.Error())
		return false
	}
	return true
}

func renderBooking(c *gin.Context, status int, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, res)
}

func renderList(c *gin.Context, items []*queries.BookingListItem, next *queries.Cursor) {
	res, err := resdto.FromBookingList(items, next)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
