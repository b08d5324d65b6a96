// Package respond provides the single JSON response envelope used by every
// endpoint.
//
// The legacy system returned raw driver results from some routes and ad-hoc
// {success, message} bodies from others. Here every JSON response has the
// same shape:
//
//	{ "success": bool, "message": "...", "data": ... }
//
// Byte-stream responses (PDF view/download) bypass this package.
package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data writes a success envelope carrying data.
func Data(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// Message writes a success envelope carrying only a message.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: true, Message: msg})
}

// Created writes a 201 envelope with a message and the created record.
func Created(w http.ResponseWriter, msg string, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Message: msg, Data: data})
}

// Error writes a failure envelope. The message is what clients see; internal
// detail belongs in the log, not here.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Envelope{Success: false, Message: msg})
}
