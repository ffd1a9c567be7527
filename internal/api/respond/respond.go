package respond

import (
	"encoding/json"
	"net/http"
)

type successResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response with a data envelope.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, successResponse{Data: data})
}

// Created writes a 201 response with a data envelope.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, successResponse{Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, errorResponse{Error: err.Error()})
}
