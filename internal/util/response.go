package util

import (
	"net/http"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/gin-gonic/gin"
)

// Response is the envelope of every json reply
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ResponseSuccess(ctx *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.AbortWithStatusJSON(http.StatusOK, Response{
		Success: true,
		Message: constant.REQUEST_SUCCESSFUL,
		Data:    data,
	})
}

// errs may be a plain error, which is turned into field messages, or anything json encodable
func ResponseFailed(ctx *gin.Context, code int, message string, errs any, data any) {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	if err, ok := errs.(error); ok {
		errs = GenerateErrorMessages(err)
	}
	if errs == nil {
		errs = []ApiError{}
	}
	if data == nil {
		data = gin.H{}
	}

	ctx.AbortWithStatusJSON(code, Response{
		Success: false,
		Message: message,
		Errors:  errs,
		Data:    data,
	})
}
