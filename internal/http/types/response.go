// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every JSON body served by the API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Demo    *bool  `json:"demo,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON encodes body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, data any, message string) error {
	return WriteJSON(w, status, Response{Success: true, Data: data, Message: message})
}

// WriteList always reports whether the data is demo content.
func WriteList(w http.ResponseWriter, data any, demo bool) error {
	return WriteJSON(w, http.StatusOK, Response{Success: true, Data: data, Demo: &demo})
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, Response{Success: false, Error: message})
}
