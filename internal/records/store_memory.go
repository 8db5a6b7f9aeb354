package records

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
)

// InMemoryStore keeps every record table behind one lock and checks the
// uniqueness rules the Postgres schema enforces with indexes.
type InMemoryStore struct {
	mu         sync.RWMutex
	citizens   map[id.NationalID]Citizen
	passports  map[string]Passport
	licenses   map[string]DrivingLicense
	addresses  map[uuid.UUID]Address
	properties map[uuid.UUID]Property
	vehicles   map[uuid.UUID]Vehicle
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		citizens:   make(map[id.NationalID]Citizen),
		passports:  make(map[string]Passport),
		licenses:   make(map[string]DrivingLicense),
		addresses:  make(map[uuid.UUID]Address),
		properties: make(map[uuid.UUID]Property),
		vehicles:   make(map[uuid.UUID]Vehicle),
	}
}

// Snapshot copies every table and returns a func that restores the copy.
func (s *InMemoryStore) Snapshot() (restore func()) {
	s.mu.RLock()
	citizens := maps.Clone(s.citizens)
	passports := maps.Clone(s.passports)
	licenses := maps.Clone(s.licenses)
	addresses := maps.Clone(s.addresses)
	properties := maps.Clone(s.properties)
	vehicles := maps.Clone(s.vehicles)
	s.mu.RUnlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.citizens = citizens
		s.passports = passports
		s.licenses = licenses
		s.addresses = addresses
		s.properties = properties
		s.vehicles = vehicles
	}
}

// -----------------------------------------------------------------------------
// Citizens
// -----------------------------------------------------------------------------

func (s *InMemoryStore) CreateCitizen(_ context.Context, c Citizen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.citizens[c.NationalID]; ok {
		return fmt.Errorf("citizen %s: %w", c.NationalID, sentinel.ErrAlreadyUsed)
	}
	s.citizens[c.NationalID] = c
	return nil
}

func (s *InMemoryStore) FindCitizen(_ context.Context, citizenID id.NationalID) (*Citizen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.citizens[citizenID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

// -----------------------------------------------------------------------------
// Documents
// -----------------------------------------------------------------------------

func (s *InMemoryStore) CreatePassport(_ context.Context, p Passport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.passports[p.Number]; ok {
		return fmt.Errorf("passport %s: %w", p.Number, sentinel.ErrAlreadyUsed)
	}
	for _, existing := range s.passports {
		if existing.CitizenID == p.CitizenID {
			return fmt.Errorf("passport for citizen %s: %w", p.CitizenID, sentinel.ErrAlreadyUsed)
		}
	}
	s.passports[p.Number] = p
	return nil
}

func (s *InMemoryStore) FindPassportByCitizen(_ context.Context, citizenID id.NationalID) (*Passport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.passports {
		if p.CitizenID == citizenID {
			return &p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// UpdatePassport replaces the passport with the same number.
func (s *InMemoryStore) UpdatePassport(_ context.Context, p Passport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.passports[p.Number]
	if !ok {
		return sentinel.ErrNotFound
	}
	if existing.CitizenID != p.CitizenID {
		return fmt.Errorf("passport %s changes owner: %w", p.Number, sentinel.ErrInvalidState)
	}
	s.passports[p.Number] = p
	return nil
}

func (s *InMemoryStore) CreateLicense(_ context.Context, l DrivingLicense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.licenses[l.Number]; ok {
		return fmt.Errorf("license %s: %w", l.Number, sentinel.ErrAlreadyUsed)
	}
	for _, existing := range s.licenses {
		if existing.CitizenID == l.CitizenID {
			return fmt.Errorf("license for citizen %s: %w", l.CitizenID, sentinel.ErrAlreadyUsed)
		}
	}
	s.licenses[l.Number] = l
	return nil
}

func (s *InMemoryStore) FindLicenseByCitizen(_ context.Context, citizenID id.NationalID) (*DrivingLicense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.licenses {
		if l.CitizenID == citizenID {
			return &l, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) UpdateLicense(_ context.Context, l DrivingLicense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.licenses[l.Number]
	if !ok {
		return sentinel.ErrNotFound
	}
	if existing.CitizenID != l.CitizenID {
		return fmt.Errorf("license %s changes owner: %w", l.Number, sentinel.ErrInvalidState)
	}
	s.licenses[l.Number] = l
	return nil
}

// -----------------------------------------------------------------------------
// Addresses
// -----------------------------------------------------------------------------

func (s *InMemoryStore) ListAddresses(_ context.Context, citizenID id.NationalID) ([]Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Address
	for _, a := range s.addresses {
		if a.CitizenID == citizenID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b Address) int { return compareUUID(a.ID, b.ID) })
	return out, nil
}

// FindActiveAddress returns the citizen's Active or Pending Request address
// with the given line, or nil when there is none.
func (s *InMemoryStore) FindActiveAddress(_ context.Context, citizenID id.NationalID, line AddressLine) (*Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.addresses {
		if a.CitizenID == citizenID && a.AddressLine == line && a.Blocks() {
			return &a, nil
		}
	}
	return nil, nil
}

// FindPendingAddress returns the citizen's placeholder address, or nil.
func (s *InMemoryStore) FindPendingAddress(_ context.Context, citizenID id.NationalID) (*Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingAddressLocked(citizenID), nil
}

func (s *InMemoryStore) pendingAddressLocked(citizenID id.NationalID) *Address {
	for _, a := range s.addresses {
		if a.CitizenID == citizenID && a.State == AddressPendingRequest {
			return &a
		}
	}
	return nil
}

func (s *InMemoryStore) CreateAddress(_ context.Context, a Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[a.ID]; ok {
		return fmt.Errorf("address %s: %w", a.ID, sentinel.ErrAlreadyUsed)
	}
	if a.State == AddressPendingRequest && s.pendingAddressLocked(a.CitizenID) != nil {
		return fmt.Errorf("pending address for citizen %s: %w", a.CitizenID, sentinel.ErrAlreadyUsed)
	}
	s.addresses[a.ID] = a
	return nil
}

func (s *InMemoryStore) UpdateAddressState(_ context.Context, addressID uuid.UUID, state AddressState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.addresses[addressID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if state == AddressPendingRequest && a.State != AddressPendingRequest && s.pendingAddressLocked(a.CitizenID) != nil {
		return fmt.Errorf("pending address for citizen %s: %w", a.CitizenID, sentinel.ErrAlreadyUsed)
	}
	a.State = state
	s.addresses[addressID] = a
	return nil
}

func (s *InMemoryStore) DeleteAddress(_ context.Context, addressID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[addressID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.addresses, addressID)
	return nil
}

// -----------------------------------------------------------------------------
// Properties
// -----------------------------------------------------------------------------

func (s *InMemoryStore) ListProperties(_ context.Context, citizenID id.NationalID) ([]Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Property
	for _, p := range s.properties {
		if p.CitizenID == citizenID {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Property) int { return compareUUID(a.ID, b.ID) })
	return out, nil
}

// FindProperty returns the owner's row for propertyID, or nil.
func (s *InMemoryStore) FindProperty(_ context.Context, owner id.NationalID, propertyID string) (*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.CitizenID == owner && p.PropertyID == propertyID {
			return &p, nil
		}
	}
	return nil, nil
}

// FindPropertyUnderTransfer returns the owner's transfer placeholder, or nil.
func (s *InMemoryStore) FindPropertyUnderTransfer(_ context.Context, owner id.NationalID) (*Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.CitizenID == owner && p.IsUnderTransfer {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *InMemoryStore) CreateProperty(_ context.Context, p Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkPropertyLocked(p); err != nil {
		return err
	}
	s.properties[p.ID] = p
	return nil
}

// PromoteProperty clears the transfer flag, making the row authoritative.
func (s *InMemoryStore) PromoteProperty(_ context.Context, rowID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[rowID]
	if !ok {
		return sentinel.ErrNotFound
	}
	p.IsUnderTransfer = false
	if err := s.checkPropertyLocked(p); err != nil {
		return err
	}
	s.properties[rowID] = p
	return nil
}

func (s *InMemoryStore) DeleteProperty(_ context.Context, rowID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[rowID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.properties, rowID)
	return nil
}

// checkPropertyLocked validates p against every other row.
func (s *InMemoryStore) checkPropertyLocked(p Property) error {
	for _, other := range s.properties {
		if other.ID == p.ID {
			continue
		}
		switch {
		case other.CitizenID == p.CitizenID && other.PropertyID == p.PropertyID:
			return fmt.Errorf("property %s for citizen %s: %w", p.PropertyID, p.CitizenID, sentinel.ErrAlreadyUsed)
		case p.IsUnderTransfer && other.IsUnderTransfer && other.CitizenID == p.CitizenID:
			return fmt.Errorf("property transfer for citizen %s: %w", p.CitizenID, sentinel.ErrAlreadyUsed)
		case !p.IsUnderTransfer && !other.IsUnderTransfer && other.PropertyID == p.PropertyID:
			return fmt.Errorf("property %s owner: %w", p.PropertyID, sentinel.ErrAlreadyUsed)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Vehicles
// -----------------------------------------------------------------------------

func (s *InMemoryStore) ListVehicles(_ context.Context, citizenID id.NationalID) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Vehicle
	for _, v := range s.vehicles {
		if v.CitizenID == citizenID {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b Vehicle) int { return compareUUID(a.ID, b.ID) })
	return out, nil
}

// FindVehicle returns the owner's row for serialNumber, or nil.
func (s *InMemoryStore) FindVehicle(_ context.Context, owner id.NationalID, serialNumber string) (*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.CitizenID == owner && v.SerialNumber == serialNumber {
			return &v, nil
		}
	}
	return nil, nil
}

// FindVehicleUnderTransfer returns the owner's transfer placeholder, or nil.
func (s *InMemoryStore) FindVehicleUnderTransfer(_ context.Context, owner id.NationalID) (*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.CitizenID == owner && v.IsUnderTransfer {
			return &v, nil
		}
	}
	return nil, nil
}

func (s *InMemoryStore) CreateVehicle(_ context.Context, v Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkVehicleLocked(v); err != nil {
		return err
	}
	s.vehicles[v.ID] = v
	return nil
}

// PromoteVehicle clears the transfer flag, making the row authoritative.
func (s *InMemoryStore) PromoteVehicle(_ context.Context, rowID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[rowID]
	if !ok {
		return sentinel.ErrNotFound
	}
	v.IsUnderTransfer = false
	if err := s.checkVehicleLocked(v); err != nil {
		return err
	}
	s.vehicles[rowID] = v
	return nil
}

func (s *InMemoryStore) DeleteVehicle(_ context.Context, rowID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[rowID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.vehicles, rowID)
	return nil
}

func (s *InMemoryStore) checkVehicleLocked(v Vehicle) error {
	for _, other := range s.vehicles {
		if other.ID == v.ID {
			continue
		}
		switch {
		case other.CitizenID == v.CitizenID && other.SerialNumber == v.SerialNumber:
			return fmt.Errorf("vehicle %s for citizen %s: %w", v.SerialNumber, v.CitizenID, sentinel.ErrAlreadyUsed)
		case v.IsUnderTransfer && other.IsUnderTransfer && other.CitizenID == v.CitizenID:
			return fmt.Errorf("vehicle transfer for citizen %s: %w", v.CitizenID, sentinel.ErrAlreadyUsed)
		case !v.IsUnderTransfer && !other.IsUnderTransfer && other.SerialNumber == v.SerialNumber:
			return fmt.Errorf("vehicle %s owner: %w", v.SerialNumber, sentinel.ErrAlreadyUsed)
		case !v.IsUnderTransfer && !other.IsUnderTransfer && other.PlateNumber == v.PlateNumber:
			return fmt.Errorf("plate number %s: %w", v.PlateNumber, sentinel.ErrAlreadyUsed)
		}
	}
	return nil
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
