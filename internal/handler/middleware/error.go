package middleware

import (
	"log/slog"
	"net/http"

	"booking-scheduler/internal/handler/httperr"
	"booking-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 12

// ErrorHandler renders errors handlers attached without writing a response.
// Public errors carry their response in Meta; any other error is mapped by
// its code, so a bare c.Error(errs.ErrBookingNotFound) still yields a 404.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if last := c.Errors.Last(); last != nil {
			status, resp := responseFor(last.Err)
			if status == http.StatusInternalServerError {
				slog.Error("unhandled error",
					"error", last.Err.Error(),
					"stack", errs.ExtractStackLines(last.Err, maxStackLines),
					"request_id", GetRequestID(c))
			}
			c.JSON(status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func responseFor(err error) (int, httperr.Response) {
	code := errs.CodeOf(err)
	status := httperr.StatusOf(code)
	if status == http.StatusInternalServerError {
		return status, internalError()
	}
	resp := httperr.Response{Status: status}
	resp.Error.Message = err.Error()
	if code == errs.CodePersistenceFailure {
		resp.Error.Message = errs.ErrPersistenceFailure.Error()
	}
	resp.Error.Code = code
	return status, resp
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Code = errs.CodeInternal
	return resp
}
