// Package registration runs the address, property and vehicle registration
// workflow. Submitting creates a provisional placeholder record next to the
// request; approval promotes it and rejection discards it.
package registration

import (
	"fmt"
	"strings"

	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
)

type RequestType string

const (
	TypeAddress  RequestType = "Address Registration"
	TypeProperty RequestType = "Property Registration"
	TypeVehicle  RequestType = "Vehicle Registration"
)

func (t RequestType) IsValid() bool {
	switch t {
	case TypeAddress, TypeProperty, TypeVehicle:
		return true
	}
	return false
}

func (t RequestType) String() string {
	return string(t)
}

func (t RequestType) alreadyRegisteredMessage() string {
	switch t {
	case TypeAddress:
		return "This is already your registered address."
	case TypeProperty:
		return "This property is already registered."
	default:
		return "This vehicle is already registered."
	}
}

// Claim describes the record being registered. It is a closed set:
// AddressClaim, PropertyClaim or VehicleClaim.
type Claim interface {
	Type() RequestType
	validate() error
	isClaim()
}

type AddressClaim struct {
	Line records.AddressLine
}

func (AddressClaim) Type() RequestType { return TypeAddress }
func (AddressClaim) isClaim()          {}

func (c AddressClaim) validate() error {
	return c.Line.Validate()
}

// PropertyClaim registers a property, transferring it from PreviousOwnerID
// when that is set.
type PropertyClaim struct {
	PropertyID      string
	Location        string
	PropertyType    records.PropertyType
	Description     string
	Size            *string
	PreviousOwnerID id.NationalID
}

func (PropertyClaim) Type() RequestType { return TypeProperty }
func (PropertyClaim) isClaim()          {}

func (c PropertyClaim) validate() error {
	return c.placeholder("", "").Validate()
}

func (c PropertyClaim) placeholder(owner id.NationalID, pictureRef string) records.Property {
	return records.Property{
		PropertyID:      strings.TrimSpace(c.PropertyID),
		CitizenID:       owner,
		Location:        c.Location,
		PropertyType:    c.PropertyType,
		Description:     c.Description,
		Size:            c.Size,
		PictureRef:      pictureRef,
		IsUnderTransfer: true,
	}
}

// VehicleClaim registers a vehicle, transferring it from PreviousOwnerID
// when that is set.
type VehicleClaim struct {
	SerialNumber    string
	Model           string
	Manufacturer    string
	Year            int
	VehicleType     records.VehicleType
	PlateNumber     string
	PreviousOwnerID id.NationalID
}

func (VehicleClaim) Type() RequestType { return TypeVehicle }
func (VehicleClaim) isClaim()          {}

func (c VehicleClaim) validate() error {
	return c.placeholder("", "").Validate()
}

func (c VehicleClaim) placeholder(owner id.NationalID, pictureRef string) records.Vehicle {
	return records.Vehicle{
		SerialNumber:    strings.TrimSpace(c.SerialNumber),
		CitizenID:       owner,
		Model:           c.Model,
		Manufacturer:    c.Manufacturer,
		Year:            c.Year,
		VehicleType:     c.VehicleType,
		PictureRef:      pictureRef,
		PlateNumber:     strings.TrimSpace(c.PlateNumber),
		IsUnderTransfer: true,
	}
}

// Submission is one registration attempt as received from the citizen.
// Picture is required for properties and vehicles and ignored for addresses.
type Submission struct {
	Claim         Claim
	Picture       []byte
	ProofDocument []byte
}

func (s Submission) validate() error {
	if s.Claim == nil {
		return dErrors.New(dErrors.CodeBadRequest, "registration details are required")
	}
	if err := s.Claim.validate(); err != nil {
		return err
	}
	if len(s.ProofDocument) == 0 {
		return dErrors.New(dErrors.CodeValidation, "a proof document is required")
	}
	if s.Claim.Type() != TypeAddress && len(s.Picture) == 0 {
		return dErrors.New(dErrors.CodeValidation, "a picture is required")
	}
	return nil
}

// Request is a registration request. Subject is the external id of the
// registered property or vehicle; it is empty for addresses.
// PreviousOwnerID is nil for new registrations.
type Request struct {
	ID               id.RequestID   `json:"id"`
	CitizenID        id.NationalID  `json:"citizen_id"`
	Type             RequestType    `json:"request_type"`
	Subject          string         `json:"subject,omitempty"`
	ProofDocumentRef string         `json:"proof_document_ref"`
	PreviousOwnerID  *id.NationalID `json:"previous_owner_id,omitempty"`
	request.Review
}

// PendingRequest is a queued request together with its placeholder, so the
// inspector sees what approval would make authoritative.
type PendingRequest struct {
	Request
	Address  *records.Address  `json:"address_info,omitempty"`
	Property *records.Property `json:"property_info,omitempty"`
	Vehicle  *records.Vehicle  `json:"vehicle_info,omitempty"`
}

func submittedMessage(t RequestType) string {
	return fmt.Sprintf("Your %s request has been received and is pending review.", t)
}

func approvedMessage(t RequestType) string {
	return fmt.Sprintf("Your %s request has been approved.", t)
}

func rejectedMessage(t RequestType, reason string) string {
	return fmt.Sprintf("Your %s request has been rejected. Reason: %s", t, reason)
}
