package response

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/logze/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	write(w, code, Envelope{Status: "success", Data: data})
}

func ErrorResponse(w http.ResponseWriter, code int, message string) {
	write(w, code, Envelope{Status: "error", Message: message})
}

func write(w http.ResponseWriter, code int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logze.Warn("failed to write response", "error", err)
	}
}
