package api

import (
	"net/http"

	"booking-scheduler/internal/domain/resource"
	reqdto "booking-scheduler/internal/handler/dto/request"
	resdto "booking-scheduler/internal/handler/dto/response"
	"booking-scheduler/internal/handler/httperr"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler answers advisory questions; a later create can still conflict.
type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List available resources
// @Description Practitioners or rooms that can serve the service in the window, in preference order.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param kind query string true "practitioner or room"
// @Param service_id query string true "Service ID"
// @Param start query string true "RFC3339"
// @Param end query string true "RFC3339"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) ListAvailable(c *gin.Context) {
	q, serviceID, ok := bindAvailabilityQuery(c)
	if !ok {
		return
	}

	views, err := h.q.AvailableResources(c.Request.Context(), resource.Kind(q.Kind), serviceID, q.Start, q.End)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromResourceViews(views)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Best available resource
// @Description The resource the candidate selector ranks first for the window: least-loaded practitioner or lowest-order room.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param kind query string true "practitioner or room"
// @Param service_id query string true "Service ID"
// @Param start query string true "RFC3339"
// @Param end query string true "RFC3339"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /availability/best [get]
func (h *AvailabilityHandler) Best(c *gin.Context) {
	q, serviceID, ok := bindAvailabilityQuery(c)
	if !ok {
		return
	}

	view, err := h.q.BestCandidate(c.Request.Context(), resource.Kind(q.Kind), serviceID, q.Start, q.End)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Check one resource
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Practitioner or room ID"
// @Param kind query string true "practitioner or room"
// @Param start query string true "RFC3339"
// @Param end query string true "RFC3339"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var q reqdto.ResourceAvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}

	available, err := h.q.IsAvailable(c.Request.Context(), resource.Kind(q.Kind), id, q.Start, q.End)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		ResourceID: id,
		Kind:       q.Kind,
		Start:      q.Start.UTC(),
		End:        q.End.UTC(),
		Available:  available,
	})
}

func bindAvailabilityQuery(c *gin.Context) (reqdto.AvailabilityQuery, uuid.UUID, bool) {
	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return q, uuid.Nil, false
	}
	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, errs.CodeValidationFailed, "Invalid query", "service_id must be a UUID")
		return q, uuid.Nil, false
	}
	return q, serviceID, true
}
