package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response writes JSON envelopes to a ResponseWriter.
type Response struct {
	w http.ResponseWriter
}

func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

type dataBody struct {
	Data any `json:"data"`
}

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v with the given status. Encoding failures can no longer change
// the status, so they are only logged.
func (res *Response) JSON(status int, v any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	if err := json.NewEncoder(res.w).Encode(v); err != nil {
		zap.L().Warn("encode response", zap.Int("status", status), zap.Error(err))
	}
}

// Success writes 200 {"data": v}.
func (res *Response) Success(v any) { res.JSON(http.StatusOK, dataBody{Data: v}) }

// Created writes 201 {"data": v}.
func (res *Response) Created(v any) { res.JSON(http.StatusCreated, dataBody{Data: v}) }

// Error writes {"message": message} with status.
func (res *Response) Error(status int, message string) {
	res.JSON(status, messageBody{Message: message})
}

// ServiceUnavailable writes 503 for a dependency that could not be resolved.
// The cause is logged; clients only see a generic message.
func (res *Response) ServiceUnavailable(cause error) {
	zap.L().Warn("dependency unavailable", zap.Error(cause))
	res.Error(http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
}
