package httperr

import (
	"net/http"

	"booking-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string    `json:"message"`
		Code    errs.Code `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

// AbortWithCode is AbortWithError for failures that already carry a stable code.
func AbortWithCode(c *gin.Context, status int, err error, code errs.Code, msg string, detail any) {
	abort(c, status, err, code, msg, detail)
}

// FromError maps a scheduling failure to its HTTP status and aborts.
func FromError(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	status := StatusOf(code)
	msg := err.Error()
	switch code {
	case errs.CodeInternal, "":
		msg = "Internal server error"
	case errs.CodePersistenceFailure:
		msg = errs.ErrPersistenceFailure.Error()
		c.Header("Retry-After", "1")
	}
	abort(c, status, err, code, msg, nil)
}

func StatusOf(code errs.Code) int {
	switch code {
	case errs.CodeInvalidTimeSlot, errs.CodeValidationFailed:
		return http.StatusBadRequest
	case errs.CodeBookingNotFound, errs.CodeClientNotFound, errs.CodeServiceNotFound, errs.CodeResourceNotFound:
		return http.StatusNotFound
	case errs.CodeResourceNotAvailable, errs.CodeInvalidStateTransition,
		errs.CodeIdempotencyConflict, errs.CodeIdempotencyInProgress:
		return http.StatusConflict
	case errs.CodeServiceNotActive, errs.CodeRescheduleTooLate:
		return http.StatusUnprocessableEntity
	case errs.CodePersistenceFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, status int, err error, code errs.Code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
