package http

import (
	"bytes"
	"io"
	"log"
	"net/http"

	json "github.com/goccy/go-json"

	"compound-interest/domain"
	"compound-interest/service"
)

type ThemeHandler struct {
	service *service.ThemeService
}

func NewThemeHandler(service *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

type themeResponse struct {
	Theme  domain.Theme `json:"theme"`
	Stored bool         `json:"stored"`
}

type setThemeRequest struct {
	Theme domain.Theme `json:"theme"`
}

type toggleThemeRequest struct {
	Current domain.Theme `json:"current"`
}

// Theme serves GET (resolve) and PUT (set). The system preference is passed
// as ?system=dark by the client.
func (h *ThemeHandler) Theme(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ThemeHandler) get(w http.ResponseWriter, r *http.Request) {
	_, stored := h.service.Stored()
	writeJSON(w, http.StatusOK, themeResponse{
		Theme:  h.service.Resolve(systemPrefersDark(r)),
		Stored: stored,
	})
}

func (h *ThemeHandler) put(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req setThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !req.Theme.Valid() {
		http.Error(w, "theme must be dark or light", http.StatusBadRequest)
		return
	}
	if err := h.service.Set(req.Theme); err != nil {
		log.Printf("Error saving theme: %v", err)
		http.Error(w, "could not save theme", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: req.Theme, Stored: true})
}

// Toggle flips the current theme. An empty body toggles the resolved theme.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var req toggleThemeRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	current := req.Current
	if current == "" {
		current = h.service.Resolve(systemPrefersDark(r))
	}
	if !current.Valid() {
		http.Error(w, "current theme must be dark or light", http.StatusBadRequest)
		return
	}

	next, err := h.service.Toggle(current)
	if err != nil {
		log.Printf("Error toggling theme: %v", err)
		http.Error(w, "could not save theme", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: next, Stored: true})
}

func systemPrefersDark(r *http.Request) bool {
	return r.URL.Query().Get("system") == string(domain.ThemeDark)
}
