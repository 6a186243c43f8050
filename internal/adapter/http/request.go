package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-auction/internal/auth"
	"mesa-auction/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// caller returns the authenticated identity. authenticate guarantees it is
// present on every /api/v1 route.
func caller(r *http.Request) domain.Identity {
	id, _ := auth.IdentityFromContext(r.Context())
	return id
}

// decode reads a JSON body into v. Unknown fields and trailing data are
// rejected with HTTP 400.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.writeError(w, r, "decode", fmt.Errorf("%w: invalid JSON: %v", domain.ErrInvalidInput, err))
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		h.writeError(w, r, "decode", fmt.Errorf("%w: unexpected data after JSON body", domain.ErrInvalidInput))
		return false
	}
	return true
}

func (h *Handler) pathUint(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		h.writeError(w, r, "parse path", fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name))
		return 0, false
	}
	return v, true
}

func (h *Handler) queryUint(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		h.writeError(w, r, "parse query", fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, name))
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.writeError(w, r, "parse query", fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name))
		return 0, false
	}
	return v, true
}
