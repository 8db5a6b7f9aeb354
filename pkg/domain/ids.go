package domain

import (
	"strings"
	"unicode"

	"github.com/google/uuid"

	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
)

// Typed identifiers keep request and notification IDs from being mixed up
// at call sites. All UUID-backed IDs share parseUUID so validation stays uniform.
type (
	RequestID      uuid.UUID
	NotificationID uuid.UUID
)

func NewRequestID() RequestID           { return RequestID(uuid.New()) }
func NewNotificationID() NotificationID { return NotificationID(uuid.New()) }

func (id RequestID) String() string      { return uuid.UUID(id).String() }
func (id NotificationID) String() string { return uuid.UUID(id).String() }

func (id RequestID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText and UnmarshalText carry typed IDs as plain UUID strings in JSON.
func (id RequestID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }
func (id NotificationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *RequestID) UnmarshalText(b []byte) error {
	u, err := parseUUID(string(b), "request ID")
	if err != nil {
		return err
	}
	*id = RequestID(u)
	return nil
}

func (id *NotificationID) UnmarshalText(b []byte) error {
	u, err := parseUUID(string(b), "notification ID")
	if err != nil {
		return err
	}
	*id = NotificationID(u)
	return nil
}

// ParseRequestID parses a request ID from external input.
func ParseRequestID(s string) (RequestID, error) {
	u, err := parseUUID(s, "request ID")
	if err != nil {
		return RequestID{}, err
	}
	return RequestID(u), nil
}

// ParseNotificationID parses a notification ID from external input.
func ParseNotificationID(s string) (NotificationID, error) {
	u, err := parseUUID(s, "notification ID")
	if err != nil {
		return NotificationID{}, err
	}
	return NotificationID(u), nil
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return u, nil
}

// NationalID is the citizen's natural key.
// Invariant: 1..30 characters, letters, digits and hyphens only.
type NationalID string

const maxNationalIDLength = 30

// ParseNationalID validates a national identifier at a trust boundary.
func ParseNationalID(s string) (NationalID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "national ID cannot be empty")
	}
	if len(s) > maxNationalIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "national ID must be 30 characters or less")
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-') {
			return "", dErrors.New(dErrors.CodeInvalidInput, "national ID contains invalid characters")
		}
	}
	return NationalID(s), nil
}

func (n NationalID) String() string { return string(n) }

func (n NationalID) IsZero() bool { return n == "" }
