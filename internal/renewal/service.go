package renewal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MindOfAhmed/DigitalSociety/internal/blob"
	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/metrics"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/tracing"
	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

const workflowName = "renewal"

// Confirmation messages returned to callers on success.
const (
	MessageSubmitted = "The process is successful and the request is pending."
	MessageApproved  = "The request has been accepted."
	MessageRejected  = "The request has been rejected."
)

const (
	msgPendingExists   = "You already have a pending request."
	msgRequestNotFound = "The request does not exist."
	msgAlreadyResolved = "request has already been resolved"
)

type DocumentStore interface {
	FindPassportByCitizen(ctx context.Context, citizenID id.NationalID) (*records.Passport, error)
	UpdatePassport(ctx context.Context, p records.Passport) error
	FindLicenseByCitizen(ctx context.Context, citizenID id.NationalID) (*records.DrivingLicense, error)
	UpdateLicense(ctx context.Context, l records.DrivingLicense) error
}

type PhotoValidator interface {
	Validate(ctx context.Context, image []byte) photo.Verdict
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

// Service orchestrates renewal submissions and inspector decisions.
type Service struct {
	requests  Store
	documents DocumentStore
	photos    PhotoValidator
	notifier  Notifier
	blobs     BlobStore
	tx        StoreTx
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

func NewService(
	requests Store,
	documents DocumentStore,
	photos PhotoValidator,
	notifier Notifier,
	blobs BlobStore,
	tx StoreTx,
	opts ...Option,
) *Service {
	s := &Service{
		requests:  requests,
		documents: documents,
		photos:    photos,
		notifier:  notifier,
		blobs:     blobs,
		tx:        tx,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// matched is the stored document a claim was checked against.
type matched struct {
	number    string
	issueDate time.Time
	license   *records.DrivingLicense
}

// Submit admits a renewal request into the Pending state. Checks run in a
// fixed order: document match, early-renewal justification, photo, then the
// one-pending-request rule. Nothing is persisted unless every check passes.
func (s *Service) Submit(ctx context.Context, citizenID id.NationalID, sub Submission) (result *Request, err error) {
	ctx, span := tracing.StartWorkflowSpan(ctx, workflowName, "submit")
	defer func() { tracing.End(span, err) }()

	if sub.Claim == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "document details are required")
	}
	if len(sub.Picture) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "a picture is required")
	}
	requestType := sub.Claim.Type()
	reason := strings.TrimSpace(sub.Reason)

	doc, err := s.matchDocument(ctx, citizenID, sub.Claim)
	if err != nil {
		return nil, err
	}

	early := request.DaysBetween(doc.issueDate, request.Today(ctx)) < requestType.minimumAgeDays()
	if early && (reason == "" || len(sub.ProofDocument) == 0) {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("You need to provide a reason and a proof document to renew your %s early.", requestType.noun()))
	}

	if verdict := s.photos.Validate(ctx, sub.Picture); !verdict.Accepted {
		return nil, dErrors.New(dErrors.CodeValidation, verdict.Reason)
	}

	pictureRef, proofRef, err := s.storeBlobs(ctx, sub)
	if err != nil {
		return nil, err
	}

	r := Request{
		ID:               id.NewRequestID(),
		CitizenID:        citizenID,
		Type:             requestType,
		DocumentNumber:   doc.number,
		PictureRef:       pictureRef,
		Reason:           reason,
		ProofDocumentRef: proofRef,
		Review:           request.NewPendingReview(requestcontext.Now(ctx)),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.matchDocument(txCtx, citizenID, sub.Claim)
		if err != nil {
			return err
		}
		pending, err := s.requests.FindPending(txCtx, citizenID, requestType)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check pending requests")
		}
		if pending != nil {
			return dErrors.New(dErrors.CodeConflict, msgPendingExists)
		}
		if err := s.requests.Create(txCtx, r); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, msgPendingExists)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create renewal request")
		}
		if claim, ok := sub.Claim.(LicenseClaim); ok && claim.EmergencyContact != "" && current.license != nil {
			current.license.EmergencyContact = claim.EmergencyContact
			if err := s.documents.UpdateLicense(txCtx, *current.license); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update emergency contact")
			}
		}
		return s.notifier.Notify(txCtx, citizenID, submittedMessage(requestType))
	})
	if err != nil {
		s.discardBlobs(ctx, pictureRef, proofRef)
		return nil, err
	}

	s.metrics.IncrementSubmitted(workflowName, requestType.String())
	s.logAudit(ctx, "renewal_submitted",
		"renewal_id", r.ID.String(),
		"citizen_id", citizenID.String(),
		"request_type", requestType.String(),
		"early", early,
	)
	return &r, nil
}

// Approve reissues the citizen's document with the request's picture and a
// fresh validity window, marks the request Approved and notifies the citizen.
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
		if err := s.reissue(txCtx, r, today); err != nil {
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
	s.logAudit(ctx, "renewal_approved",
		"renewal_id", requestID.String(),
		"citizen_id", result.CitizenID.String(),
		"request_type", result.Type.String(),
		"reviewed_by", reviewer,
	)
	return result, nil
}

// Reject records the reason, marks the request Rejected and notifies the
// citizen. The document is left untouched.
func (s *Service) Reject(ctx context.Context, requestID id.RequestID, reviewer, reason string) (result *Request, err error) {
	ctx, span := tracing.StartWorkflowSpan(ctx, workflowName, "reject")
	defer func() { tracing.End(span, err) }()

	today := request.Today(ctx)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.requests.Execute(txCtx, requestID, canResolve,
			func(r *Request) {
				r.ApplyRejection(today, reviewer, reason)
			},
		)
		if err != nil {
			return translateResolveErr(err)
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

	s.metrics.IncrementResolved(workflowName, result.Type.String(), string(request.StatusRejected))
	s.logAudit(ctx, "renewal_rejected",
		"renewal_id", requestID.String(),
		"citizen_id", result.CitizenID.String(),
		"request_type", result.Type.String(),
		"reviewed_by", reviewer,
	)
	return result, nil
}

// ListPending returns the inspector queue, oldest first.
func (s *Service) ListPending(ctx context.Context, types ...RequestType) ([]Request, error) {
	out, err := s.requests.ListPending(ctx, types...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending renewal requests")
	}
	return out, nil
}

func (s *Service) ListForCitizen(ctx context.Context, citizenID id.NationalID) ([]Request, error) {
	out, err := s.requests.ListByCitizen(ctx, citizenID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list renewal requests")
	}
	return out, nil
}

func (s *Service) matchDocument(ctx context.Context, citizenID id.NationalID, claim Claim) (matched, error) {
	switch c := claim.(type) {
	case PassportClaim:
		p, err := s.documents.FindPassportByCitizen(ctx, citizenID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return matched{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load passport")
		}
		if p == nil || !c.matches(p) {
			return matched{}, dErrors.New(dErrors.CodeValidation,
				"The passport does not exist. Please check your information again")
		}
		return matched{number: p.Number, issueDate: p.IssueDate}, nil
	case LicenseClaim:
		l, err := s.documents.FindLicenseByCitizen(ctx, citizenID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return matched{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load license")
		}
		if l == nil || !c.matches(l) {
			return matched{}, dErrors.New(dErrors.CodeValidation,
				"The license does not exist. Please check your information again")
		}
		return matched{number: l.Number, issueDate: l.IssueDate, license: l}, nil
	default:
		return matched{}, dErrors.New(dErrors.CodeBadRequest, "unsupported document type")
	}
}

func (s *Service) reissue(ctx context.Context, r *Request, today time.Time) error {
	expiry := request.AddDays(today, r.Type.validityDays())
	switch r.Type {
	case TypePassport:
		p, err := s.documents.FindPassportByCitizen(ctx, r.CitizenID)
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeInconsistentState,
				fmt.Sprintf("passport for renewal request %s no longer exists", r.ID))
		}
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load passport")
		}
		p.Reissue(today, expiry, r.PictureRef)
		if err := s.documents.UpdatePassport(ctx, *p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reissue passport")
		}
	case TypeDrivingLicense:
		l, err := s.documents.FindLicenseByCitizen(ctx, r.CitizenID)
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeInconsistentState,
				fmt.Sprintf("license for renewal request %s no longer exists", r.ID))
		}
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load license")
		}
		l.Reissue(today, expiry, r.PictureRef)
		if err := s.documents.UpdateLicense(ctx, *l); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reissue license")
		}
	default:
		return dErrors.New(dErrors.CodeInconsistentState, fmt.Sprintf("unknown renewal type %q", r.Type))
	}
	return nil
}

func (s *Service) storeBlobs(ctx context.Context, sub Submission) (pictureRef, proofRef string, err error) {
	pictureRef, err = s.blobs.Put(ctx, blob.KindPicture, sub.Picture)
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store picture")
	}
	if len(sub.ProofDocument) > 0 {
		proofRef, err = s.blobs.Put(ctx, blob.KindProof, sub.ProofDocument)
		if err != nil {
			s.discardBlobs(ctx, pictureRef)
			return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to store proof document")
		}
	}
	return pictureRef, proofRef, nil
}

// discardBlobs removes blobs written for a submission that did not commit.
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

func (s *Service) observeFailure(ctx context.Context, requestID id.RequestID, err error) {
	if !dErrors.HasCode(err, dErrors.CodeInconsistentState) {
		return
	}
	s.metrics.IncrementConsistencyFault(workflowName)
	s.logger.ErrorContext(ctx, "consistency fault",
		"event", "consistency_fault",
		"workflow", workflowName,
		"renewal_id", requestID.String(),
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
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve renewal request")
}
