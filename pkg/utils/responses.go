package utils

import (
	"encoding/json"
	"net/http"

	"user-admin/pkg/notify"
)

type Response struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Errors  any            `json:"errors,omitempty"`
	Toasts  []notify.Toast `json:"toasts,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any, toasts []notify.Toast) {
	response := Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
		Toasts:  toasts,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any, toasts []notify.Toast) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil, toasts)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any, toasts []notify.Toast) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil, toasts)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any, toasts []notify.Toast) {
	ResponseJSON(w, http.StatusBadRequest, false, message, nil, errors, toasts)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string, toasts []notify.Toast) {
	ResponseJSON(w, http.StatusNotFound, false, message, nil, nil, toasts)
}

// returns 502 Bad Gateway, for remote API faults
func ResponseBadGateway(w http.ResponseWriter, message string, toasts []notify.Toast) {
	ResponseJSON(w, http.StatusBadGateway, false, message, nil, nil, toasts)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string, toasts []notify.Toast) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, nil, nil, toasts)
}
