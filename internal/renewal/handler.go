package renewal

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/httputil"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

// Workflow is the renewal service as the handler sees it.
type Workflow interface {
	Submit(ctx context.Context, citizenID id.NationalID, sub Submission) (*Request, error)
	Approve(ctx context.Context, requestID id.RequestID, reviewer string) (*Request, error)
	Reject(ctx context.Context, requestID id.RequestID, reviewer, reason string) (*Request, error)
	ListPending(ctx context.Context, types ...RequestType) ([]Request, error)
}

// Handler serves the citizen submission and inspector review endpoints.
// Authentication and role checks are applied by the router.
type Handler struct {
	workflow Workflow
	logger   *slog.Logger
}

func NewHandler(workflow Workflow, logger *slog.Logger) *Handler {
	return &Handler{workflow: workflow, logger: logger}
}

// RegisterCitizenRoutes mounts the submission endpoints.
func (h *Handler) RegisterCitizenRoutes(r chi.Router) {
	r.Post("/renewals/passport", h.handleSubmitPassport)
	r.Post("/renewals/driving-license", h.handleSubmitLicense)
}

// RegisterInspectorRoutes mounts the review endpoints.
func (h *Handler) RegisterInspectorRoutes(r chi.Router) {
	r.Get("/inspector/renewals", h.handleListPending)
	r.Post("/inspector/renewals/{id}/approve", h.handleApprove)
	r.Post("/inspector/renewals/{id}/reject", h.handleReject)
}

type submitResponse struct {
	Message string   `json:"message"`
	Request *Request `json:"request"`
}

type rejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

func (h *Handler) handleSubmitPassport(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(r *http.Request) (Claim, error) {
		number := strings.TrimSpace(r.FormValue("passport_number"))
		if number == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "passport_number is required")
		}
		issue, err := httputil.FormDate(r, "issue_date")
		if err != nil {
			return nil, err
		}
		expiry, err := httputil.FormDate(r, "expiry_date")
		if err != nil {
			return nil, err
		}
		return PassportClaim{Number: number, IssueDate: issue, ExpiryDate: expiry}, nil
	})
}

func (h *Handler) handleSubmitLicense(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(r *http.Request) (Claim, error) {
		number := strings.TrimSpace(r.FormValue("license_number"))
		if number == "" {
			return nil, dErrors.New(dErrors.CodeValidation, "license_number is required")
		}
		issue, err := httputil.FormDate(r, "issue_date")
		if err != nil {
			return nil, err
		}
		expiry, err := httputil.FormDate(r, "expiry_date")
		if err != nil {
			return nil, err
		}
		class := records.LicenseClass(strings.TrimSpace(r.FormValue("license_class")))
		if !class.IsValid() {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid license_class")
		}
		return LicenseClaim{
			Number:           number,
			IssueDate:        issue,
			ExpiryDate:       expiry,
			Nationality:      strings.TrimSpace(r.FormValue("nationality")),
			LicenseClass:     class,
			EmergencyContact: strings.TrimSpace(r.FormValue("emergency_contact")),
		}, nil
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, parseClaim func(*http.Request) (Claim, error)) {
	ctx := r.Context()
	citizenID := requestcontext.CitizenID(ctx)

	if err := httputil.ParseMultipart(w, r, httputil.DefaultMaxUpload); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	claim, err := parseClaim(r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	picture, err := httputil.FormFile(r, "picture")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	proof, err := httputil.FormFile(r, "proof_document")
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	created, err := h.workflow.Submit(ctx, citizenID, Submission{
		Claim:         claim,
		Picture:       picture,
		Reason:        r.FormValue("reason"),
		ProofDocument: proof,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, submitResponse{Message: MessageSubmitted, Request: created})
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var types []RequestType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := RequestType(raw)
		if !t.IsValid() {
			h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "unknown renewal type"))
			return
		}
		types = append(types, t)
	}
	pending, err := h.workflow.ListPending(ctx, types...)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if pending == nil {
		pending = []Request{}
	}
	httputil.WriteJSON(w, http.StatusOK, pending)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, err := id.ParseRequestID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if _, err := h.workflow.Approve(ctx, requestID, requestcontext.CitizenID(ctx).String()); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MessageApproved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, err := id.ParseRequestID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	var body rejectRequest
	if err := httputil.DecodeJSON(r, &body); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if _, err := h.workflow.Reject(ctx, requestID, requestcontext.CitizenID(ctx).String(), body.RejectionReason); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, MessageRejected)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if status := dErrors.ToHTTPStatus(dErrors.CodeOf(err)); status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "renewal request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
