package registration

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

// Workflow is the registration service as the handler sees it.
type Workflow interface {
	Submit(ctx context.Context, citizenID id.NationalID, sub Submission) (*Request, error)
	Approve(ctx context.Context, requestID id.RequestID, reviewer string) (*Request, error)
	Reject(ctx context.Context, requestID id.RequestID, reviewer, reason string) (*Request, error)
	ListPending(ctx context.Context, types ...RequestType) ([]PendingRequest, error)
}

type Handler struct {
	workflow Workflow
	logger   *slog.Logger
}

func NewHandler(workflow Workflow, logger *slog.Logger) *Handler {
	return &Handler{workflow: workflow, logger: logger}
}

func (h *Handler) RegisterCitizenRoutes(r chi.Router) {
	r.Post("/registrations/address", h.handleSubmitAddress)
	r.Post("/registrations/property", h.handleSubmitProperty)
	r.Post("/registrations/vehicle", h.handleSubmitVehicle)
}

func (h *Handler) RegisterInspectorRoutes(r chi.Router) {
	r.Get("/inspector/registrations", h.handleListPending)
	r.Post("/inspector/registrations/{id}/approve", h.handleApprove)
	r.Post("/inspector/registrations/{id}/reject", h.handleReject)
}

type submitResponse struct {
	Message string   `json:"message"`
	Request *Request `json:"request"`
}

type rejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

func (h *Handler) handleSubmitAddress(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(r *http.Request) (Claim, error) {
		line := records.AddressLine{
			Country: strings.TrimSpace(r.FormValue("country")),
			City:    strings.TrimSpace(r.FormValue("city")),
			Street:  strings.TrimSpace(r.FormValue("street")),
		}
		var err error
		if line.BuildingNumber, err = httputil.FormInt(r, "building_number"); err != nil {
			return nil, err
		}
		if line.FloorNumber, err = httputil.FormInt(r, "floor_number"); err != nil {
			return nil, err
		}
		if line.ApartmentNumber, err = httputil.FormInt(r, "apartment_number"); err != nil {
			return nil, err
		}
		return AddressClaim{Line: line}, nil
	})
}

func (h *Handler) handleSubmitProperty(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(r *http.Request) (Claim, error) {
		previousOwner, err := formPreviousOwner(r)
		if err != nil {
			return nil, err
		}
		claim := PropertyClaim{
			PropertyID:      strings.TrimSpace(r.FormValue("property_id")),
			Location:        strings.TrimSpace(r.FormValue("location")),
			PropertyType:    records.PropertyType(strings.TrimSpace(r.FormValue("property_type"))),
			Description:     r.FormValue("description"),
			PreviousOwnerID: previousOwner,
		}
		if size := strings.TrimSpace(r.FormValue("size")); size != "" {
			claim.Size = &size
		}
		return claim, nil
	})
}

func (h *Handler) handleSubmitVehicle(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, func(r *http.Request) (Claim, error) {
		previousOwner, err := formPreviousOwner(r)
		if err != nil {
			return nil, err
		}
		year, err := httputil.FormInt(r, "year")
		if err != nil {
			return nil, err
		}
		return VehicleClaim{
			SerialNumber:    strings.TrimSpace(r.FormValue("serial_number")),
			Model:           strings.TrimSpace(r.FormValue("model")),
			Manufacturer:    strings.TrimSpace(r.FormValue("manufacturer")),
			Year:            year,
			VehicleType:     records.VehicleType(strings.TrimSpace(r.FormValue("vehicle_type"))),
			PlateNumber:     strings.TrimSpace(r.FormValue("plate_number")),
			PreviousOwnerID: previousOwner,
		}, nil
	})
}

func formPreviousOwner(r *http.Request) (id.NationalID, error) {
	raw := strings.TrimSpace(r.FormValue("previous_owner_id"))
	if raw == "" {
		return "", nil
	}
	return id.ParseNationalID(raw)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, parseClaim func(*http.Request) (Claim, error)) {
	ctx := r.Context()
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

	created, err := h.workflow.Submit(ctx, requestcontext.CitizenID(ctx), Submission{
		Claim:         claim,
		Picture:       picture,
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
			h.writeError(ctx, w, dErrors.New(dErrors.CodeBadRequest, "unknown registration type"))
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
		pending = []PendingRequest{}
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
		h.logger.ErrorContext(ctx, "registration request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
