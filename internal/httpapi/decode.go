package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"nlpd/internal/nlp"
	"nlpd/pkg/types"
)

var validate = validator.New()

// decodeNERRequest reads and validates a POST /ner body and returns its text.
func decodeNERRequest(w http.ResponseWriter, r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return "", requestError{status: http.StatusUnsupportedMediaType, msg: "Content-Type must be application/json"}
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.NERRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Oversized bodies also land here; still 400 to avoid leaking size details.
		return "", nlp.ErrInvalidInput("invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return "", nlp.ErrInvalidInput("text is required")
	}
	return *req.Text, nil
}
