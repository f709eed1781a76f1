package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx reply.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"requestId,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// New builds a response whose code is derived from the status text,
// e.g. 409 becomes "conflict".
func New(c *gin.Context, status int, code, msg string, detail any) Response {
	if code == "" {
		code = StatusCode(status)
	}
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	if c != nil {
		resp.Error.RequestID = c.GetString("request_id")
	}
	return resp
}

// StatusCode turns an HTTP status into a snake_case error code.
func StatusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}

// AbortWithError keeps err on the gin context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, "", err, msg, detail)
}

// AbortWithCode is AbortWithError with an explicit machine readable code.
func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := New(c, status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
