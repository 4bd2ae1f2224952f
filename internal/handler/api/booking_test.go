//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"booking-scheduler/internal/handler/api"
	resdto "booking-scheduler/internal/handler/dto/response"
	"booking-scheduler/internal/pkg/errs"
	"booking-scheduler/internal/pkg/jwt"
	"booking-scheduler/internal/usecase/commands"
	"booking-scheduler/internal/usecase/queries"
	"booking-scheduler/tests/common/builder"
	"booking-scheduler/tests/common/httptest"
	"booking-scheduler/tests/common/testutil"
	commandsmock "booking-scheduler/tests/mock/commands"
	queriesmock "booking-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", jwt.RoleOperator)
		c.Next()
	}

	s.router.Use(authMiddleware)
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PATCH("/bookings/:id", s.handler.Update)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
	s.router.POST("/bookings/:id/reschedule", s.handler.Reschedule)
	s.router.PUT("/bookings/:id/practitioner", s.handler.AssignPractitioner)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/bookings/:id/confirm", s.handler.Confirm)
	s.router.POST("/bookings/:id/complete", s.handler.Complete)
	s.router.POST("/bookings/:id/no-show", s.handler.NoShow)
	s.router.GET("/practitioners/:id/bookings", s.handler.ListByPractitioner)
	s.router.GET("/rooms/:id/bookings", s.handler.ListByRoom)
	s.router.GET("/clients/:id/bookings", s.handler.ListByClient)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

const token = "bearer-token"

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), (*uuid.UUID)(nil)).
			DoAndReturn(func(_ any, p commands.CreateBookingParams, _ *uuid.UUID) (*commands.CreateBookingResult, error) {
				s.Equal(reqBody.ClientID, p.ClientID)
				s.Equal(reqBody.ServiceID, p.ServiceID)
				s.True(reqBody.StartTime.Equal(p.Start))
				s.Equal("first visit", p.Notes)
				return &commands.CreateBookingResult{Booking: view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("confirmed", body.Status)
		s.Equal("80.00", body.Total)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + view.ID.String()})
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replay carries Idempotent-Replayed header", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), &key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, token, map[string]string{"Idempotency-Key": key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 for a malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, token, map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: client_id", mutate: testutil.Field("client_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: location_id", mutate: testutil.Field("location_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end_time", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
			{name: "notes at limit", mutate: testutil.Field("notes", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
			{name: "no practitioner requested", mutate: testutil.Field("practitioner_id", nil), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(&commands.CreateBookingResult{Booking: view}, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), token)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorCode(s.T(), rec, tc.expectCode, string(errs.CodeValidationFailed))
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps scheduling failures to statuses and codes", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   errs.Code
		}{
			{name: "invalid slot", err: errs.ErrInvalidTimeSlot, status: http.StatusBadRequest, code: errs.CodeInvalidTimeSlot},
			{name: "unknown client", err: errs.ErrClientNotFound, status: http.StatusNotFound, code: errs.CodeClientNotFound},
			{name: "unknown service", err: errs.ErrServiceNotFound, status: http.StatusNotFound, code: errs.CodeServiceNotFound},
			{name: "inactive service", err: errs.ErrServiceNotActive, status: http.StatusUnprocessableEntity, code: errs.CodeServiceNotActive},
			{name: "resource busy", err: errs.Wrap(errs.ErrResourceNotAvailable, "practitioner taken"), status: http.StatusConflict, code: errs.CodeResourceNotAvailable},
			{name: "key reused", err: errs.ErrIdempotencyConflict, status: http.StatusConflict, code: errs.CodeIdempotencyConflict},
			{name: "key in flight", err: errs.ErrIdempotencyInProgress, status: http.StatusConflict, code: errs.CodeIdempotencyInProgress},
			{name: "storage down", err: errs.Mark(errors.New("conn refused"), errs.ErrPersistenceFailure), status: http.StatusServiceUnavailable, code: errs.CodePersistenceFailure},
			{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: errs.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
				httptest.AssertErrorCode(s.T(), rec, tc.status, string(tc.code))
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.PractitionerID, body.PractitionerID)
		s.Equal(view.Notes, body.Notes)
		s.True(view.StartTime.Equal(body.StartTime))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing or deleted booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, string(errs.CodeBookingNotFound))
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	item := builder.NewBookingBuilder().BuildListItem()

	s.Run("success: single date", func() {
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), "2030-01-07").
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=2030-01-07", nil, token)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(item.ID, body.Items[0].ID)
		s.Nil(body.NextCursor)
	})

	s.Run("success: date range with empty result renders empty array", func() {
		s.mockQueries.EXPECT().ListByDateRange(gomock.Any(), "2030-01-01", "2030-01-31").
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=2030-01-01&to=2030-01-31", nil, token)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 400 without date or range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=2030-01-01", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})

	s.Run("error: 400 for malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date=07-01-2030", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})

	s.Run("error: range too wide surfaces validation code", func() {
		s.mockQueries.EXPECT().ListByDateRange(gomock.Any(), "2030-01-01", "2030-12-31").
			Return(nil, errs.Wrap(errs.ErrValidation, "range exceeds 93 days")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=2030-01-01&to=2030-12-31", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})
}

func (s *BookingHandlerTestSuite) TestListByResource() {
	id := uuid.New()
	item := builder.NewBookingBuilder().BuildListItem()

	s.Run("success: practitioner day", func() {
		s.mockQueries.EXPECT().ListByPractitionerDate(gomock.Any(), id, "2030-01-07").
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/practitioners/"+id.String()+"/bookings?date=2030-01-07", nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: room day", func() {
		s.mockQueries.EXPECT().ListByRoomDate(gomock.Any(), id, "2030-01-07").
			Return([]*queries.BookingListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String()+"/bookings?date=2030-01-07", nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: date is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+id.String()+"/bookings", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})
}

func (s *BookingHandlerTestSuite) TestListByClient() {
	clientID := uuid.New()
	item := builder.NewBookingBuilder().BuildListItem()
	base := "/clients/" + clientID.String() + "/bookings"

	s.Run("success: first page returns next cursor", func() {
		next := &queries.Cursor{After: queries.EncodeAfterCursor(item.StartTime, item.ID)}
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), clientID, (*queries.Cursor)(nil), 1).
			Return([]*queries.BookingListItem{item}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?limit=1", nil, token)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.NextCursor)
		s.Equal(next.After, *body.NextCursor)
	})

	s.Run("success: cursor is forwarded and default limit applies", func() {
		after := queries.EncodeAfterCursor(item.StartTime, item.ID)
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), clientID, &queries.Cursor{After: after}, 20).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?after="+after, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?limit=500", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})
}

// ================================================================================
// TestUpdate / TestReschedule / TestAssignPractitioner
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: only provided fields are forwarded", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p commands.UpdateBookingParams) (*queries.BookingView, error) {
				s.Require().NotNil(p.Notes)
				s.Equal("bring towel", *p.Notes)
				s.Nil(p.Start)
				s.Nil(p.PractitionerID)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"notes": "bring towel"}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, string(errs.CodeValidationFailed))
	})

	s.Run("error: conflict on moved slot", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, errs.ErrResourceNotAvailable).Times(1)

		start := builder.BaseTime.Add(2 * time.Hour)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"start_time": start, "end_time": start.Add(time.Hour)}, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.CodeResourceNotAvailable))
	})
}

func (s *BookingHandlerTestSuite) TestReschedule() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String() + "/reschedule"
	start := builder.BaseTime.Add(24 * time.Hour)
	body := map[string]any{"start_time": start, "end_time": start.Add(time.Hour), "reason": "client asked"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), view.ID, gomock.Any(), gomock.Any(), "client asked").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: too close to start", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), view.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRescheduleTooLate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, string(errs.CodeRescheduleTooLate))
	})

	s.Run("error: terminal booking", func() {
		s.mockCommands.EXPECT().RescheduleBooking(gomock.Any(), view.ID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.CodeInvalidStateTransition))
	})
}

func (s *BookingHandlerTestSuite) TestAssignPractitioner() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String() + "/practitioner"

	s.Run("success: assigns", func() {
		practitionerID := uuid.New()
		s.mockCommands.EXPECT().AssignPractitioner(gomock.Any(), view.ID, &practitionerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"practitioner_id": practitionerID}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: null asks for auto-assignment", func() {
		s.mockCommands.EXPECT().AssignPractitioner(gomock.Any(), view.ID, (*uuid.UUID)(nil)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"practitioner_id": nil}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// Transitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	base := "/bookings/" + id.String()

	s.Run("cancel with reason", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "sick").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", map[string]any{"reason": "sick"}, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("cancel without body", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, "").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("confirm", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("complete", func() {
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/complete", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("no-show on cancelled booking", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id).Return(errs.ErrInvalidStateTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/no-show", nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, string(errs.CodeInvalidStateTransition))
	})

	s.Run("delete", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete twice", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, token)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, string(errs.CodeBookingNotFound))
	})
}
