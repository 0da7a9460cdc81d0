package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Message   string        `json:"message"`
	Status    int           `json:"status"`
	RequestID string        `json:"request_id,omitempty"`
	Details   []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes data as the response body with the given status.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: error=%v", err)
	}
}

// JSONError writes the error envelope {"error": {"message", "status"}}.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string, details []ErrorDetail) {
	body := ErrorResponseBody{
		Message: message,
		Status:  statusCode,
		Details: details,
	}
	if r != nil {
		body.RequestID = RequestIDFrom(r)
	}
	JSON(w, statusCode, ErrorResponse{Error: body})
}
