package photo

import (
	"errors"
	"fmt"
)

// ErrorCategory is the normalized failure taxonomy for face detectors.
type ErrorCategory string

const (
	// ErrorCredentials indicates missing, invalid or unauthorized credentials
	ErrorCredentials ErrorCategory = "credentials"

	// ErrorTimeout indicates the provider took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorThrottled indicates the provider rejected the call for rate reasons
	ErrorThrottled ErrorCategory = "throttled"

	// ErrorInvalidImage indicates the provider refused the image itself
	ErrorInvalidImage ErrorCategory = "invalid_image"

	// ErrorProviderOutage indicates the provider is unavailable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorInternal indicates an unexpected failure
	ErrorInternal ErrorCategory = "internal"
)

// DetectorError wraps detector failures with a normalized category.
type DetectorError struct {
	Category   ErrorCategory
	Provider   string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *DetectorError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("detector %s [%s]: %s: %v", e.Provider, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("detector %s [%s]: %s", e.Provider, e.Category, e.Message)
}

func (e *DetectorError) Unwrap() error {
	return e.Underlying
}

// NewDetectorError creates a normalized detector error. Message should be the
// provider's own description; it ends up in the rejection reason.
func NewDetectorError(category ErrorCategory, provider, message string, underlying error) *DetectorError {
	retryable := category == ErrorTimeout ||
		category == ErrorThrottled ||
		category == ErrorProviderOutage

	return &DetectorError{
		Category:   category,
		Provider:   provider,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// CategoryOf extracts the category from an error, defaulting to ErrorInternal.
func CategoryOf(err error) ErrorCategory {
	var de *DetectorError
	if errors.As(err, &de) {
		return de.Category
	}
	return ErrorInternal
}

// IsRetryable reports whether the failure is worth retrying.
func IsRetryable(err error) bool {
	var de *DetectorError
	if errors.As(err, &de) {
		return de.Retryable
	}
	return false
}

// detectorVerdict downgrades a detector failure to a rejection that keeps
// the provider's message.
func detectorVerdict(err error) Verdict {
	message := err.Error()
	var de *DetectorError
	if errors.As(err, &de) && de.Message != "" {
		message = de.Message
	}
	if CategoryOf(err) == ErrorCredentials {
		return reject(CheckDetectorCredentials, fmt.Sprintf(reasonCredentialsFmt, message))
	}
	return reject(CheckDetectorError, fmt.Sprintf(reasonDetectorFmt, message))
}
