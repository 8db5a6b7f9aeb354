package citizen

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/httputil"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

// Views is the read side served under /me.
type Views interface {
	Documents(ctx context.Context, citizenID id.NationalID) (*Documents, error)
	Notifications(ctx context.Context, citizenID id.NationalID) ([]notification.Notification, error)
	Requests(ctx context.Context, citizenID id.NationalID) (*Requests, error)
}

type Handler struct {
	views  Views
	logger *slog.Logger
}

func NewHandler(views Views, logger *slog.Logger) *Handler {
	return &Handler{views: views, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me/documents", h.handleDocuments)
	r.Get("/me/notifications", h.handleNotifications)
	r.Get("/me/requests", h.handleRequests)
}

func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	docs, err := h.views.Documents(ctx, requestcontext.CitizenID(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	notes, err := h.views.Notifications(ctx, requestcontext.CitizenID(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if notes == nil {
		notes = []notification.Notification{}
	}
	httputil.WriteJSON(w, http.StatusOK, notes)
}

func (h *Handler) handleRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqs, err := h.views.Requests(ctx, requestcontext.CitizenID(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reqs)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if dErrors.ToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "citizen view failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
