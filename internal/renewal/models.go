// Package renewal runs the passport and driving-license renewal workflow:
// citizens submit, inspectors approve (reissuing the document) or reject.
package renewal

import (
	"fmt"
	"time"

	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
)

// RequestType names the renewable document.
type RequestType string

const (
	TypePassport       RequestType = "Passport"
	TypeDrivingLicense RequestType = "Driver's License"
)

func (t RequestType) IsValid() bool {
	return t == TypePassport || t == TypeDrivingLicense
}

func (t RequestType) String() string {
	return string(t)
}

// minimumAgeDays is how long an issuance must be held before it can be
// renewed without a reason and proof document.
func (t RequestType) minimumAgeDays() int {
	if t == TypePassport {
		return 1095
	}
	return 1825
}

// validityDays is the length of a reissued document's validity window.
func (t RequestType) validityDays() int {
	if t == TypePassport {
		return 365 * 5
	}
	return 365 * 10
}

// noun is the word citizens see in renewal messages.
func (t RequestType) noun() string {
	if t == TypePassport {
		return "passport"
	}
	return "license"
}

// Claim is what the citizen states about their current document. It is a
// closed set: PassportClaim or LicenseClaim.
type Claim interface {
	Type() RequestType
	isClaim()
}

// PassportClaim must match the stored passport field for field.
type PassportClaim struct {
	Number     string
	IssueDate  time.Time
	ExpiryDate time.Time
}

func (PassportClaim) Type() RequestType { return TypePassport }
func (PassportClaim) isClaim()          {}

func (c PassportClaim) matches(p *records.Passport) bool {
	return p.Number == c.Number &&
		sameDay(p.IssueDate, c.IssueDate) &&
		sameDay(p.ExpiryDate, c.ExpiryDate)
}

// LicenseClaim must match the stored license; EmergencyContact is not part
// of the match and replaces the stored contact on a successful submission.
type LicenseClaim struct {
	Number           string
	IssueDate        time.Time
	ExpiryDate       time.Time
	Nationality      string
	LicenseClass     records.LicenseClass
	EmergencyContact string
}

func (LicenseClaim) Type() RequestType { return TypeDrivingLicense }
func (LicenseClaim) isClaim()          {}

func (c LicenseClaim) matches(l *records.DrivingLicense) bool {
	return l.Number == c.Number &&
		sameDay(l.IssueDate, c.IssueDate) &&
		sameDay(l.ExpiryDate, c.ExpiryDate) &&
		l.Nationality == c.Nationality &&
		l.LicenseClass == c.LicenseClass
}

func sameDay(a, b time.Time) bool {
	return request.DateOf(a).Equal(request.DateOf(b))
}

// Submission is one renewal attempt as received from the citizen.
type Submission struct {
	Claim         Claim
	Picture       []byte
	Reason        string
	ProofDocument []byte
}

// Request is a renewal request. Reason and ProofDocumentRef are empty when
// the citizen did not supply them.
type Request struct {
	ID               id.RequestID  `json:"id"`
	CitizenID        id.NationalID `json:"citizen_id"`
	Type             RequestType   `json:"request_type"`
	DocumentNumber   string        `json:"document_number"`
	PictureRef       string        `json:"picture_ref"`
	Reason           string        `json:"reason,omitempty"`
	ProofDocumentRef string        `json:"proof_document_ref,omitempty"`
	request.Review
}

func approvedMessage(t RequestType) string {
	return fmt.Sprintf("Your %s renewal request has been approved.", t)
}

func rejectedMessage(t RequestType, reason string) string {
	return fmt.Sprintf("Your %s renewal request has been rejected. Reason: %s", t, reason)
}

func submittedMessage(t RequestType) string {
	return fmt.Sprintf("Your %s renewal request has been received and is pending review.", t)
}
