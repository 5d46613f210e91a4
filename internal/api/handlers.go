// Package api exposes the HTTP surface of the activity signup service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
	logger  *zap.Logger
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ActivityView mirrors the original wire format: the activity name travels
// only as the map key, never inside the object.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is the success body for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body shape for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for name, act := range activities {
		resp[name] = toActivityView(act)
	}
	h.respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := h.mutationParams(w, r)
	if !ok {
		return
	}

	message, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, MessageResponse{Message: message})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := h.mutationParams(w, r)
	if !ok {
		return
	}

	message, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, r, http.StatusOK, MessageResponse{Message: message})
}

// mutationParams extracts the activity name from the route and the email from
// the query string. Activity names contain spaces, so the path segment arrives
// percent-escaped.
func (h *Handler) mutationParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	name := chi.URLParam(r, "activity")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		h.respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Detail: "Missing email query parameter"})
		return "", "", false
	}
	return name, email, true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordRejection("activity_not_found")
		h.respondJSON(w, r, http.StatusNotFound, ErrorResponse{Detail: "Activity not found"})
	case errors.Is(err, domain.ErrAlreadySignedUp):
		observability.RecordRejection("already_signed_up")
		h.respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Detail: "Student is already signed up for this activity"})
	case errors.Is(err, domain.ErrNotSignedUp):
		observability.RecordRejection("not_signed_up")
		h.respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Detail: "Student is not signed up for this activity"})
	default:
		h.logger.Error("unhandled service error", zap.Error(err), zap.String("path", r.URL.Path))
		h.respondJSON(w, r, http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write json response", zap.Error(err), zap.String("path", r.URL.Path))
	}
}

func toActivityView(act domain.Activity) ActivityView {
	participants := act.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    participants,
	}
}

// SortedNames lists activity names in lexical order, for log output.
func SortedNames(activities map[string]domain.Activity) []string {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
