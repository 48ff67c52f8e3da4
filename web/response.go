package web

import (
	"github.com/oarkflow/frame"
	"github.com/oarkflow/frame/pkg/protocol/consts"
)

type Response struct {
	Additional any    `json:"additional,omitempty"`
	Data       any    `json:"data"`
	Message    string `json:"message,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Code       int    `json:"code"`
	Success    bool   `json:"success"`
}

func getResponse(code int, message string, additional any) Response {
	return Response{
		Code:       code,
		Message:    message,
		Success:    false,
		Additional: additional,
	}
}

func requestID(ctx *frame.Context) string {
	if id, ok := ctx.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func Failed(ctx *frame.Context, code int, message string, additional any) {
	response := getResponse(code, message, additional)
	response.RequestID = requestID(ctx)
	ctx.JSON(consts.StatusOK, response)
}

func Success(ctx *frame.Context, code int, data any, message ...string) {
	response := Response{
		Code:      code,
		Data:      data,
		Success:   true,
		RequestID: requestID(ctx),
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	ctx.JSON(consts.StatusOK, response)
}
