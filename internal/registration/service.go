package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/MindOfAhmed/DigitalSociety/internal/blob"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/tracing"
	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

const workflowName = "registration"

// Confirmation messages returned to callers on success.
const (
	MessageSubmitted = "The process is successful and the request is pending."
	MessageApproved  = "The registration request has been accepted successfully."
	MessageRejected  = "The registration request has been rejected successfully."
)

const (
	msgPendingExists   = "You already have a pending request."
	msgRequestNotFound = "The request does not exist."
	msgAlreadyResolved = "request has already been resolved"
)

// RecordStore is the part of the records store that holds placeholders.
// Find* lookups return (nil, nil) when nothing matches.
type RecordStore interface {
	FindActiveAddress(ctx context.Context, citizenID id.NationalID, line records.AddressLine) (*records.Address, error)
	FindPendingAddress(ctx context.Context, citizenID id.NationalID) (*records.Address, error)
	CreateAddress(ctx context.Context, a records.Address) error
	UpdateAddressState(ctx context.Context, addressID uuid.UUID, state records.AddressState) error
	DeleteAddress(ctx context.Context, addressID uuid.UUID) error

	FindProperty(ctx context.Context, owner id.NationalID, propertyID string) (*records.Property, error)
	FindPropertyUnderTransfer(ctx context.Context, owner id.NationalID) (*records.Property, error)
	CreateProperty(ctx context.Context, p records.Property) error
	PromoteProperty(ctx context.Context, rowID uuid.UUID) error
	DeleteProperty(ctx context.Context, rowID uuid.UUID) error

	FindVehicle(ctx context.Context, owner id.NationalID, serialNumber string) (*records.Vehicle, error)
	FindVehicleUnderTransfer(ctx context.Context, owner id.NationalID) (*records.Vehicle, error)
	CreateVehicle(ctx context.Context, v records.Vehicle) error
	PromoteVehicle(ctx context.Context, rowID uuid.UUID) error
	DeleteVehicle(ctx context.Context, rowID uuid.UUID) error
}

type Notifier interface {
	Notify(ctx context.Context, citizenID id.NationalID, message string) error
}

type BlobStore interface {
	Put(ctx context.Context, kind blob.Kind, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}

// StoreTx runs fn atomically across the request, record and outbox stores.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates registration submissions and inspector decisions.
type Service struct {
	requests Store
	records  RecordStore
	notifier Notifier
	blobs    BlobStore
	tx       StoreTx
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func NewService(requests Store, recordStore RecordStore, notifier Notifier, blobs BlobStore, tx StoreTx, opts ...Option) *Service {
	s := &Service{
		requests: requests,
		records:  recordStore,
		notifier: notifier,
		blobs:    blobs,
		tx:       tx,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit creates the placeholder record and the Pending request in one
// transaction. The citizen may hold one Pending request per type, and may
// not register a record they already hold.
func (s *Service) Submit(ctx context.Context, citizenID id.NationalID, sub Submission) (result *Request, err error) {
	ctx, span := tracing.StartWorkflowSpan(ctx, workflowName, "submit")
	defer func() { tracing.End(span, err) }()

	if err := sub.validate(); err != nil {
		return nil, err
	}
	requestType := sub.Claim.Type()

	proofRef, pictureRef, err := s.storeBlobs(ctx, sub)
	if err != nil {
		return nil, err
	}

	r := Request{
		ID:               id.NewRequestID(),
		CitizenID:        citizenID,
		Type:             requestType,
		Subject:          claimSubject(sub.Claim),
		PreviousOwnerID:  claimPreviousOwner(sub.Claim),
		ProofDocumentRef: proofRef,
		Review:           request.NewPendingReview(requestcontext.Now(ctx)),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		pending, err := s.requests.FindPending(txCtx, citizenID, requestType)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check pending requests")
		}
		if pending != nil {
			return dErrors.New(dErrors.CodeConflict, msgPendingExists)
		}
		// The request row goes first so a concurrent submit for the same
		// type fails on the one-pending-request rule, not on a record index.
		if err := s.requests.Create(txCtx, r); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, msgPendingExists)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create registration request")
		}
		if err := s.createPlaceholder(txCtx, citizenID, sub.Claim, pictureRef); err != nil {
			return err
		}
		return s.notifier.Notify(txCtx, citizenID, submittedMessage(requestType))
	})
	if err != nil {
		s.discardBlobs(ctx, proofRef, pictureRef)
		return nil, err
	}

	s.metrics.IncrementSubmitted(workflowName, requestType.String())
	s.logAudit(ctx, "registration_submitted",
		"registration_id", r.ID.String(),
		"citizen_id", citizenID.String(),
		"request_type", requestType.String(),
		"subject", r.Subject,
	)
	return &r, nil
}

// Approve promotes the placeholder to an authoritative record, removing the
// previous owner's row for transfers, and notifies the citizen.
func (s *Service) Approve(ctx context.Context, requestID id.RequestID, reviewer string) (result *Request, err error) {
	ctx, span := tracing.StartWorkflowSpan(ctx, workflowName, "approve")
	defer func() { tracing.End(span, err) }()

	today := request.Today(ctx)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.requests.Execute(txCtx, requestID, canResolve,
			func(r *Request) {
				r.ApplyApproval(today, reviewer)
			},
		)
		if err != nil {
			return translateResolveErr(err)
		}
		if err := s.promote(txCtx, r); err != nil {
			return err
		}
		if err := s.notifier.Notify(txCtx, r.CitizenID, approvedMessage(r.Type)); err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		s.observeFailure(ctx, requestID, err)
		return nil, err
	}

	s.metrics.IncrementResolved(workflowName, result.Type.String(), string(request.StatusApproved))
	s.logAudit(ctx, "registration_approved",
		"registration_id", requestID.String(),
		"citizen_id", result.CitizenID.String(),
		"request_type", result.Type.String(),
		"reviewed_by", reviewer,
	)
	return result, nil
}

// Reject records the reason, deletes the placeholder and notifies the
// citizen. Prior ownership is left untouched.
func (s *Service) Reject(ctx context.Context, requestID id.RequestID, reviewer, reason string) (result *Request, err error) {
	ctx, span := tracing.StartWorkflowSpan(ctx, workflowName, "reject")
	defer func() { tracing.End(span, err) }()

	today := request.Today(ctx)
	var pictureRef string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.requests.Execute(txCtx, requestID, canResolve,
			func(r *Request) {
				r.ApplyRejection(today, reviewer, reason)
			},
		)
		if err != nil {
			return translateResolveErr(err)
		}
		pictureRef, err = s.discardPlaceholder(txCtx, r)
		if err != nil {
			return err
		}
		if err := s.notifier.Notify(txCtx, r.CitizenID, rejectedMessage(r.Type, reason)); err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.discardBlobs(ctx, pictureRef)

	s.metrics.IncrementResolved(workflowName, result.Type.String(), string(request.StatusRejected))
	s.logAudit(ctx, "registration_rejected",
		"registration_id", requestID.String(),
		"citizen_id", result.CitizenID.String(),
		"request_type", result.Type.String(),
		"reviewed_by", reviewer,
	)
	return result, nil
}

// ListPending returns the inspector queue, oldest first, each request with
// its placeholder.
func (s *Service) ListPending(ctx context.Context, types ...RequestType) ([]PendingRequest, error) {
	pending, err := s.requests.ListPending(ctx, types...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending registration requests")
	}
	out := make([]PendingRequest, 0, len(pending))
	for _, r := range pending {
		view := PendingRequest{Request: r}
		switch r.Type {
		case TypeAddress:
			view.Address, err = s.records.FindPendingAddress(ctx, r.CitizenID)
		case TypeProperty:
			view.Property, err = s.records.FindPropertyUnderTransfer(ctx, r.CitizenID)
		case TypeVehicle:
			view.Vehicle, err = s.records.FindVehicleUnderTransfer(ctx, r.CitizenID)
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load registration placeholder")
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Service) ListForCitizen(ctx context.Context, citizenID id.NationalID) ([]Request, error) {
	out, err := s.requests.ListByCitizen(ctx, citizenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list registration requests")
	}
	return out, nil
}

// createPlaceholder inserts the provisional record for claim.
func (s *Service) createPlaceholder(ctx context.Context, citizenID id.NationalID, claim Claim, pictureRef string) error {
	switch c := claim.(type) {
	case AddressClaim:
		existing, err := s.records.FindActiveAddress(ctx, citizenID, c.Line)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check addresses")
		}
		if existing != nil {
			return dErrors.New(dErrors.CodeConflict, TypeAddress.alreadyRegisteredMessage())
		}
		err = s.records.CreateAddress(ctx, records.NewPendingAddress(citizenID, c.Line))
		return placeholderErr(TypeAddress, err)

	case PropertyClaim:
		p := c.placeholder(citizenID, pictureRef)
		p.ID = uuid.New()
		existing, err := s.records.FindProperty(ctx, citizenID, p.PropertyID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check properties")
		}
		if existing != nil {
			return dErrors.New(dErrors.CodeConflict, TypeProperty.alreadyRegisteredMessage())
		}
		err = s.records.CreateProperty(ctx, p)
		return placeholderErr(TypeProperty, err)

	case VehicleClaim:
		v := c.placeholder(citizenID, pictureRef)
		v.ID = uuid.New()
		existing, err := s.records.FindVehicle(ctx, citizenID, v.SerialNumber)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check vehicles")
		}
		if existing != nil {
			return dErrors.New(dErrors.CodeConflict, TypeVehicle.alreadyRegisteredMessage())
		}
		err = s.records.CreateVehicle(ctx, v)
		return placeholderErr(TypeVehicle, err)

	default:
		return dErrors.New(dErrors.CodeBadRequest, "unsupported registration type")
	}
}

func (s *Service) promote(ctx context.Context, r *Request) error {
	switch r.Type {
	case TypeAddress:
		a, err := s.records.FindPendingAddress(ctx, r.CitizenID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pending address")
		}
		if a == nil {
			return missingPlaceholder(r)
		}
		if err := s.records.UpdateAddressState(ctx, a.ID, records.AddressActive); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to activate address")
		}

	case TypeProperty:
		p, err := s.records.FindPropertyUnderTransfer(ctx, r.CitizenID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load property placeholder")
		}
		if p == nil || (r.Subject != "" && p.PropertyID != r.Subject) {
			return missingPlaceholder(r)
		}
		if r.PreviousOwnerID != nil {
			prev, err := s.records.FindProperty(ctx, *r.PreviousOwnerID, p.PropertyID)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load previous owner's property")
			}
			if prev != nil && !prev.IsUnderTransfer {
				if err := s.records.DeleteProperty(ctx, prev.ID); err != nil {
					return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove previous owner's property")
				}
			} else {
				s.warnNoPreviousOwner(ctx, r)
			}
		}
		if err := s.records.PromoteProperty(ctx, p.ID); err != nil {
			return promoteErr(TypeProperty, err)
		}

	case TypeVehicle:
		v, err := s.records.FindVehicleUnderTransfer(ctx, r.CitizenID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vehicle placeholder")
		}
		if v == nil || (r.Subject != "" && v.SerialNumber != r.Subject) {
			return missingPlaceholder(r)
		}
		if r.PreviousOwnerID != nil {
			prev, err := s.records.FindVehicle(ctx, *r.PreviousOwnerID, v.SerialNumber)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load previous owner's vehicle")
			}
			if prev != nil && !prev.IsUnderTransfer {
				if err := s.records.DeleteVehicle(ctx, prev.ID); err != nil {
					return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove previous owner's vehicle")
				}
			} else {
				s.warnNoPreviousOwner(ctx, r)
			}
		}
		if err := s.records.PromoteVehicle(ctx, v.ID); err != nil {
			return promoteErr(TypeVehicle, err)
		}

	default:
		return dErrors.New(dErrors.CodeInconsistentState, fmt.Sprintf("unknown registration type %q", r.Type))
	}
	return nil
}

// discardPlaceholder deletes the placeholder of a rejected request and
// returns its picture ref. A missing placeholder is logged and skipped.
func (s *Service) discardPlaceholder(ctx context.Context, r *Request) (string, error) {
	switch r.Type {
	case TypeAddress:
		a, err := s.records.FindPendingAddress(ctx, r.CitizenID)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pending address")
		}
		if a == nil {
			s.warnNoPlaceholder(ctx, r)
			return "", nil
		}
		if err := s.records.DeleteAddress(ctx, a.ID); err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete pending address")
		}
		return "", nil

	case TypeProperty:
		p, err := s.records.FindPropertyUnderTransfer(ctx, r.CitizenID)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load property placeholder")
		}
		if p == nil {
			s.warnNoPlaceholder(ctx, r)
			return "", nil
		}
		if err := s.records.DeleteProperty(ctx, p.ID); err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete property placeholder")
		}
		return p.PictureRef, nil

	case TypeVehicle:
		v, err := s.records.FindVehicleUnderTransfer(ctx, r.CitizenID)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vehicle placeholder")
		}
		if v == nil {
			s.warnNoPlaceholder(ctx, r)
			return "", nil
		}
		if err := s.records.DeleteVehicle(ctx, v.ID); err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete vehicle placeholder")
		}
		return v.PictureRef, nil
	}
	return "", nil
}

func (s *Service) storeBlobs(ctx context.Context, sub Submission) (proofRef, pictureRef string, err error) {
	proofRef, err = s.blobs.Put(ctx, blob.KindProof, sub.ProofDocument)
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store proof document")
	}
	if sub.Claim.Type() != TypeAddress {
		pictureRef, err = s.blobs.Put(ctx, blob.KindPicture, sub.Picture)
		if err != nil {
			s.discardBlobs(ctx, proofRef)
			return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store picture")
		}
	}
	return proofRef, pictureRef, nil
}

func (s *Service) discardBlobs(ctx context.Context, refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, ref); err != nil {
			s.logger.WarnContext(ctx, "failed to discard blob", "ref", ref, "error", err)
		}
	}
}

func (s *Service) warnNoPreviousOwner(ctx context.Context, r *Request) {
	s.logger.WarnContext(ctx, "previous owner holds no record to remove",
		"registration_id", r.ID.String(),
		"previous_owner_id", r.PreviousOwnerID.String(),
		"subject", r.Subject,
	)
}

func (s *Service) warnNoPlaceholder(ctx context.Context, r *Request) {
	s.logger.WarnContext(ctx, "rejected registration had no placeholder",
		"registration_id", r.ID.String(),
		"citizen_id", r.CitizenID.String(),
		"request_type", r.Type.String(),
	)
}

func (s *Service) observeFailure(ctx context.Context, requestID id.RequestID, err error) {
	if !dErrors.HasCode(err, dErrors.CodeInconsistentState) {
		return
	}
	s.metrics.IncrementConsistencyFault(workflowName)
	s.logger.ErrorContext(ctx, "consistency fault",
		"event", "consistency_fault",
		"workflow", workflowName,
		"registration_id", requestID.String(),
		"error", err,
	)
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}

// claimSubject is the external id a property or vehicle request is about.
func claimSubject(claim Claim) string {
	switch c := claim.(type) {
	case PropertyClaim:
		return strings.TrimSpace(c.PropertyID)
	case VehicleClaim:
		return strings.TrimSpace(c.SerialNumber)
	default:
		return ""
	}
}

func claimPreviousOwner(claim Claim) *id.NationalID {
	switch c := claim.(type) {
	case PropertyClaim:
		return optionalOwner(c.PreviousOwnerID)
	case VehicleClaim:
		return optionalOwner(c.PreviousOwnerID)
	default:
		return nil
	}
}

func optionalOwner(owner id.NationalID) *id.NationalID {
	if owner.IsZero() {
		return nil
	}
	return &owner
}

func missingPlaceholder(r *Request) error {
	return dErrors.New(dErrors.CodeInconsistentState,
		fmt.Sprintf("placeholder for %s %s is missing", r.Type, r.ID))
}

func placeholderErr(t RequestType, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.New(dErrors.CodeConflict, t.alreadyRegisteredMessage())
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create placeholder")
	}
}

func promoteErr(t RequestType, err error) error {
	if errors.Is(err, sentinel.ErrAlreadyUsed) {
		return dErrors.New(dErrors.CodeConflict, t.alreadyRegisteredMessage())
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to promote placeholder")
}

func canResolve(r *Request) error {
	if err := r.CanResolve(); err != nil {
		return dErrors.New(dErrors.CodeConflict, msgAlreadyResolved)
	}
	return nil
}

func translateResolveErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, msgRequestNotFound)
	}
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve registration request")
}
