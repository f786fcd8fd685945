package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// ResponseBody is the uniform JSON envelope every endpoint returns.
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success writes a 200 envelope; data is optional and at most one value.
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail converts err into the envelope. Non-*Error values are wrapped as
// ErrInternal so raw errors never leak to clients.
func Fail(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal.WithOrigin(err)
	}

	c.Set(ErrorContextKey, appErr)

	status := int(appErr.Code)
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ResponseBody{
		Code: appErr.Code,
		Msg:  appErr.Message,
	})
}

// Recovery is installed as a deferred call by the recovery middleware.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = errors.Errorf("panic: %v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}
