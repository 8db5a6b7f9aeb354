// Package request holds the lifecycle shared by renewal and registration
// requests: a request is created Pending and resolved exactly once.
package request

import (
	"context"
	"time"

	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

// Status is the review state of a request.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo allows Pending→Approved and Pending→Rejected only.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

func (s Status) String() string {
	return string(s)
}

// Review is the status block embedded in every request.
//
// Invariants:
//   - ReviewedAt is nil while Pending and set once resolved
//   - RejectionReason is non-nil iff Status is Rejected (empty string allowed)
type Review struct {
	Status          Status     `json:"status"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
}

// NewPendingReview starts a review at submission time.
func NewPendingReview(submittedAt time.Time) Review {
	return Review{Status: StatusPending, SubmittedAt: submittedAt}
}

// CanResolve checks that the review has not been resolved yet.
// Use with ApplyApproval/ApplyRejection in Execute callbacks.
func (r *Review) CanResolve() error {
	if !r.Status.CanTransitionTo(StatusApproved) {
		return dErrors.New(dErrors.CodeInvariantViolation, "request has already been resolved")
	}
	return nil
}

// ApplyApproval marks the review approved. Call CanResolve first.
func (r *Review) ApplyApproval(today time.Time, reviewer string) {
	r.Status = StatusApproved
	r.ReviewedAt = &today
	r.ReviewedBy = reviewer
	r.RejectionReason = nil
}

// ApplyRejection marks the review rejected. A missing reason is stored as the
// empty string so a rejected request never has a null reason.
func (r *Review) ApplyRejection(today time.Time, reviewer, reason string) {
	r.Status = StatusRejected
	r.ReviewedAt = &today
	r.ReviewedBy = reviewer
	r.RejectionReason = &reason
}

// Today is the request-scoped calendar date in UTC.
func Today(ctx context.Context) time.Time {
	return DateOf(requestcontext.Now(ctx))
}

// DateOf truncates t to midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays adds n exact days. No calendar adjustment: 365*5 days is not
// always five calendar years.
func AddDays(date time.Time, n int) time.Time {
	return date.Add(time.Duration(n) * 24 * time.Hour)
}

// DaysBetween returns whole days from earlier to later (negative if reversed).
func DaysBetween(earlier, later time.Time) int {
	return int(DateOf(later).Sub(DateOf(earlier)) / (24 * time.Hour))
}
