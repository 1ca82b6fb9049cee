package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/unchin/unchin/internal/shared"
)

// OKBody is returned by mutations that have nothing else to report.
type OKBody struct {
	OK bool `json:"ok"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK sends {"ok":true}.
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, OKBody{OK: true})
}

// DecodeJSON decodes JSON request body into the target struct. Malformed
// bodies are reported as validation failures.
func DecodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", shared.ErrValidation, err)
	}
	return nil
}

// Attachment prepares headers for a file download.
func Attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
