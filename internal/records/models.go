// Package records holds the authoritative citizen records touched by the
// renewal and registration workflows, and their stores.
package records

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

func (s Sex) IsValid() bool { return s == SexMale || s == SexFemale }

type BloodType string

var bloodTypes = []BloodType{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func (b BloodType) IsValid() bool { return slices.Contains(bloodTypes, b) }

type LicenseClass string

const (
	LicenseClassA LicenseClass = "A"
	LicenseClassB LicenseClass = "B"
	LicenseClassC LicenseClass = "C"
	LicenseClassD LicenseClass = "D"
)

func (c LicenseClass) IsValid() bool {
	switch c {
	case LicenseClassA, LicenseClassB, LicenseClassC, LicenseClassD:
		return true
	}
	return false
}

// AddressState is the lifecycle of an address row.
type AddressState string

const (
	AddressActive         AddressState = "Active"
	AddressInactive       AddressState = "Inactive"
	AddressPendingRequest AddressState = "Pending Request"
)

func (s AddressState) IsValid() bool {
	switch s {
	case AddressActive, AddressInactive, AddressPendingRequest:
		return true
	}
	return false
}

type PropertyType string

var propertyTypes = []PropertyType{"Residential", "Commercial", "Industrial", "Agricultural", "Land", "Intellectual"}

func (p PropertyType) IsValid() bool { return slices.Contains(propertyTypes, p) }

type VehicleType string

var vehicleTypes = []VehicleType{"SUV", "Sedan", "Truck", "Van", "Bus", "Sports Car", "Motorcycle"}

func (v VehicleType) IsValid() bool { return slices.Contains(vehicleTypes, v) }

// Citizen is the identity anchor. Identity fields are immutable.
type Citizen struct {
	NationalID  id.NationalID `json:"national_id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	DateOfBirth time.Time     `json:"date_of_birth"`
	Sex         Sex           `json:"sex"`
	BloodType   BloodType     `json:"blood_type"`
	PictureRef  string        `json:"picture_ref,omitempty"`
}

func (c Citizen) Validate() error {
	switch {
	case c.NationalID.IsZero():
		return dErrors.New(dErrors.CodeValidation, "national id is required")
	case strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "":
		return dErrors.New(dErrors.CodeValidation, "first and last name are required")
	case !c.Sex.IsValid():
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid sex %q", c.Sex))
	case !c.BloodType.IsValid():
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid blood type %q", c.BloodType))
	}
	return nil
}

// Passport is unique per citizen.
type Passport struct {
	Number     string        `json:"passport_number"`
	CitizenID  id.NationalID `json:"citizen_id"`
	IssueDate  time.Time     `json:"issue_date"`
	ExpiryDate time.Time     `json:"expiry_date"`
	PictureRef string        `json:"picture_ref"`
}

// Reissue starts a new validity window with the renewal picture.
func (p *Passport) Reissue(issue, expiry time.Time, pictureRef string) {
	p.IssueDate = issue
	p.ExpiryDate = expiry
	p.PictureRef = pictureRef
}

// DrivingLicense is unique per citizen.
type DrivingLicense struct {
	Number           string        `json:"license_number"`
	CitizenID        id.NationalID `json:"citizen_id"`
	IssueDate        time.Time     `json:"issue_date"`
	ExpiryDate       time.Time     `json:"expiry_date"`
	PictureRef       string        `json:"picture_ref"`
	Nationality      string        `json:"nationality"`
	LicenseClass     LicenseClass  `json:"license_class"`
	EmergencyContact string        `json:"emergency_contact"`
}

func (l *DrivingLicense) Reissue(issue, expiry time.Time, pictureRef string) {
	l.IssueDate = issue
	l.ExpiryDate = expiry
	l.PictureRef = pictureRef
}

// AddressLine is the identifying tuple of an address.
type AddressLine struct {
	Country         string `json:"country"`
	City            string `json:"city"`
	Street          string `json:"street"`
	BuildingNumber  int    `json:"building_number"`
	FloorNumber     int    `json:"floor_number"`
	ApartmentNumber int    `json:"apartment_number"`
}

func (a AddressLine) Validate() error {
	if strings.TrimSpace(a.Country) == "" || strings.TrimSpace(a.City) == "" || strings.TrimSpace(a.Street) == "" {
		return dErrors.New(dErrors.CodeValidation, "country, city and street are required")
	}
	if a.BuildingNumber < 0 || a.FloorNumber < 0 || a.ApartmentNumber < 0 {
		return dErrors.New(dErrors.CodeValidation, "address numbers must not be negative")
	}
	return nil
}

func (a AddressLine) String() string {
	return a.Street + ", " + a.City + ", " + a.Country
}

// Address belongs to one citizen. At most one per citizen is in
// AddressPendingRequest.
type Address struct {
	ID        uuid.UUID     `json:"id"`
	CitizenID id.NationalID `json:"citizen_id"`
	AddressLine
	State AddressState `json:"state"`
}

// NewPendingAddress is the placeholder created by an address registration.
func NewPendingAddress(citizen id.NationalID, line AddressLine) Address {
	return Address{ID: uuid.New(), CitizenID: citizen, AddressLine: line, State: AddressPendingRequest}
}

// Blocks reports whether an existing address prevents registering the same
// line again. Inactive addresses may be registered anew.
func (a Address) Blocks() bool {
	return a.State == AddressActive || a.State == AddressPendingRequest
}

// AssetKind discriminates the two transferable asset tables.
type AssetKind string

const (
	AssetProperty AssetKind = "property"
	AssetVehicle  AssetKind = "vehicle"
)

// Property is identified externally by PropertyID. During a transfer the new
// owner holds a row with IsUnderTransfer while the previous owner's row stays
// authoritative.
type Property struct {
	ID              uuid.UUID     `json:"id"`
	PropertyID      string        `json:"property_id"`
	CitizenID       id.NationalID `json:"citizen_id"`
	Location        string        `json:"location"`
	PropertyType    PropertyType  `json:"property_type"`
	Description     string        `json:"description"`
	Size            *string       `json:"size,omitempty"`
	PictureRef      string        `json:"picture_ref"`
	IsUnderTransfer bool          `json:"is_under_transfer"`
}

func (p Property) Validate() error {
	switch {
	case strings.TrimSpace(p.PropertyID) == "":
		return dErrors.New(dErrors.CodeValidation, "property id is required")
	case strings.TrimSpace(p.Location) == "":
		return dErrors.New(dErrors.CodeValidation, "location is required")
	case !p.PropertyType.IsValid():
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid property type %q", p.PropertyType))
	}
	return nil
}

// Vehicle is identified externally by SerialNumber; PlateNumber is unique
// among non-transfer rows.
type Vehicle struct {
	ID              uuid.UUID     `json:"id"`
	SerialNumber    string        `json:"serial_number"`
	CitizenID       id.NationalID `json:"citizen_id"`
	Model           string        `json:"model"`
	Manufacturer    string        `json:"manufacturer"`
	Year            int           `json:"year"`
	VehicleType     VehicleType   `json:"vehicle_type"`
	PictureRef      string        `json:"picture_ref"`
	PlateNumber     string        `json:"plate_number"`
	IsUnderTransfer bool          `json:"is_under_transfer"`
}

func (v Vehicle) Validate() error {
	switch {
	case strings.TrimSpace(v.SerialNumber) == "":
		return dErrors.New(dErrors.CodeValidation, "serial number is required")
	case strings.TrimSpace(v.PlateNumber) == "":
		return dErrors.New(dErrors.CodeValidation, "plate number is required")
	case strings.TrimSpace(v.Model) == "" || strings.TrimSpace(v.Manufacturer) == "":
		return dErrors.New(dErrors.CodeValidation, "model and manufacturer are required")
	case v.Year < 1886:
		return dErrors.New(dErrors.CodeValidation, "invalid vehicle year")
	case !v.VehicleType.IsValid():
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid vehicle type %q", v.VehicleType))
	}
	return nil
}
