package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MindOfAhmed/DigitalSociety/internal/platform/postgres"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
	txcontext "github.com/MindOfAhmed/DigitalSociety/pkg/platform/tx"
)

// PostgresStore persists records in Postgres. Every statement joins the
// transaction carried by ctx, if any.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) exec(ctx context.Context) txcontext.Executor {
	return txcontext.ExecutorFrom(ctx, s.db)
}

// translate maps driver errors onto sentinel errors.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return sentinel.ErrNotFound
	case postgres.IsUniqueViolation(err, ""):
		return fmt.Errorf("%s: %w", what, sentinel.ErrAlreadyUsed)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", what, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// -----------------------------------------------------------------------------
// Citizens
// -----------------------------------------------------------------------------

func (s *PostgresStore) CreateCitizen(ctx context.Context, c Citizen) error {
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO citizens (national_id, first_name, last_name, date_of_birth, sex, blood_type, picture_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.NationalID.String(), c.FirstName, c.LastName, c.DateOfBirth, string(c.Sex), string(c.BloodType), c.PictureRef,
	)
	return translate(err, "insert citizen")
}

func (s *PostgresStore) FindCitizen(ctx context.Context, citizenID id.NationalID) (*Citizen, error) {
	var c Citizen
	err := s.exec(ctx).QueryRowContext(ctx, `
		SELECT national_id, first_name, last_name, date_of_birth, sex, blood_type, picture_ref
		FROM citizens WHERE national_id = $1`, citizenID.String(),
	).Scan(&c.NationalID, &c.FirstName, &c.LastName, &c.DateOfBirth, &c.Sex, &c.BloodType, &c.PictureRef)
	if err != nil {
		return nil, translate(err, "select citizen")
	}
	return &c, nil
}

// -----------------------------------------------------------------------------
// Documents
// -----------------------------------------------------------------------------

func (s *PostgresStore) CreatePassport(ctx context.Context, p Passport) error {
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO passports (passport_number, citizen_id, issue_date, expiry_date, picture_ref)
		VALUES ($1, $2, $3, $4, $5)`,
		p.Number, p.CitizenID.String(), p.IssueDate, p.ExpiryDate, p.PictureRef,
	)
	return translate(err, "insert passport")
}

func (s *PostgresStore) FindPassportByCitizen(ctx context.Context, citizenID id.NationalID) (*Passport, error) {
	var p Passport
	err := s.exec(ctx).QueryRowContext(ctx, `
		SELECT passport_number, citizen_id, issue_date, expiry_date, picture_ref
		FROM passports WHERE citizen_id = $1`, citizenID.String(),
	).Scan(&p.Number, &p.CitizenID, &p.IssueDate, &p.ExpiryDate, &p.PictureRef)
	if err != nil {
		return nil, translate(err, "select passport")
	}
	return &p, nil
}

func (s *PostgresStore) UpdatePassport(ctx context.Context, p Passport) error {
	res, err := s.exec(ctx).ExecContext(ctx, `
		UPDATE passports SET issue_date = $3, expiry_date = $4, picture_ref = $5
		WHERE passport_number = $1 AND citizen_id = $2`,
		p.Number, p.CitizenID.String(), p.IssueDate, p.ExpiryDate, p.PictureRef,
	)
	if err != nil {
		return translate(err, "update passport")
	}
	return expectOneRow(res, "update passport")
}

func (s *PostgresStore) CreateLicense(ctx context.Context, l DrivingLicense) error {
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO driving_licenses (license_number, citizen_id, issue_date, expiry_date, picture_ref,
			nationality, license_class, emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.Number, l.CitizenID.String(), l.IssueDate, l.ExpiryDate, l.PictureRef,
		l.Nationality, string(l.LicenseClass), l.EmergencyContact,
	)
	return translate(err, "insert license")
}

func (s *PostgresStore) FindLicenseByCitizen(ctx context.Context, citizenID id.NationalID) (*DrivingLicense, error) {
	var l DrivingLicense
	err := s.exec(ctx).QueryRowContext(ctx, `
		SELECT license_number, citizen_id, issue_date, expiry_date, picture_ref,
			nationality, license_class, emergency_contact
		FROM driving_licenses WHERE citizen_id = $1`, citizenID.String(),
	).Scan(&l.Number, &l.CitizenID, &l.IssueDate, &l.ExpiryDate, &l.PictureRef,
		&l.Nationality, &l.LicenseClass, &l.EmergencyContact)
	if err != nil {
		return nil, translate(err, "select license")
	}
	return &l, nil
}

func (s *PostgresStore) UpdateLicense(ctx context.Context, l DrivingLicense) error {
	res, err := s.exec(ctx).ExecContext(ctx, `
		UPDATE driving_licenses
		SET issue_date = $3, expiry_date = $4, picture_ref = $5, emergency_contact = $6
		WHERE license_number = $1 AND citizen_id = $2`,
		l.Number, l.CitizenID.String(), l.IssueDate, l.ExpiryDate, l.PictureRef, l.EmergencyContact,
	)
	if err != nil {
		return translate(err, "update license")
	}
	return expectOneRow(res, "update license")
}

// -----------------------------------------------------------------------------
// Addresses
// -----------------------------------------------------------------------------

const addressColumns = `id, citizen_id, country, city, street, building_number, floor_number, apartment_number, state`

func scanAddress(row interface{ Scan(...any) error }) (Address, error) {
	var a Address
	err := row.Scan(&a.ID, &a.CitizenID, &a.Country, &a.City, &a.Street,
		&a.BuildingNumber, &a.FloorNumber, &a.ApartmentNumber, &a.State)
	return a, err
}

func (s *PostgresStore) ListAddresses(ctx context.Context, citizenID id.NationalID) ([]Address, error) {
	rows, err := s.exec(ctx).QueryContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE citizen_id = $1 ORDER BY id`, citizenID.String())
	if err != nil {
		return nil, translate(err, "list addresses")
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// optionalAddress turns "no rows" into (nil, nil).
func optionalAddress(row *sql.Row, what string) (*Address, error) {
	a, err := scanAddress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, what)
	}
	return &a, nil
}

func (s *PostgresStore) FindActiveAddress(ctx context.Context, citizenID id.NationalID, line AddressLine) (*Address, error) {
	row := s.exec(ctx).QueryRowContext(ctx, `
		SELECT `+addressColumns+` FROM addresses
		WHERE citizen_id = $1 AND country = $2 AND city = $3 AND street = $4
			AND building_number = $5 AND floor_number = $6 AND apartment_number = $7
			AND state IN ('Active', 'Pending Request')
		LIMIT 1`,
		citizenID.String(), line.Country, line.City, line.Street,
		line.BuildingNumber, line.FloorNumber, line.ApartmentNumber,
	)
	return optionalAddress(row, "select address")
}

func (s *PostgresStore) FindPendingAddress(ctx context.Context, citizenID id.NationalID) (*Address, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE citizen_id = $1 AND state = 'Pending Request'`,
		citizenID.String())
	return optionalAddress(row, "select pending address")
}

func (s *PostgresStore) CreateAddress(ctx context.Context, a Address) error {
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO addresses (`+addressColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.CitizenID.String(), a.Country, a.City, a.Street,
		a.BuildingNumber, a.FloorNumber, a.ApartmentNumber, string(a.State),
	)
	return translate(err, "insert address")
}

func (s *PostgresStore) UpdateAddressState(ctx context.Context, addressID uuid.UUID, state AddressState) error {
	res, err := s.exec(ctx).ExecContext(ctx,
		`UPDATE addresses SET state = $2 WHERE id = $1`, addressID, string(state))
	if err != nil {
		return translate(err, "update address")
	}
	return expectOneRow(res, "update address")
}

func (s *PostgresStore) DeleteAddress(ctx context.Context, addressID uuid.UUID) error {
	res, err := s.exec(ctx).ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, addressID)
	if err != nil {
		return translate(err, "delete address")
	}
	return expectOneRow(res, "delete address")
}

// -----------------------------------------------------------------------------
// Properties
// -----------------------------------------------------------------------------

const propertyColumns = `id, property_id, citizen_id, location, property_type, description, size, picture_ref, is_under_transfer`

func scanProperty(row interface{ Scan(...any) error }) (Property, error) {
	var (
		p    Property
		size sql.NullString
	)
	err := row.Scan(&p.ID, &p.PropertyID, &p.CitizenID, &p.Location, &p.PropertyType,
		&p.Description, &size, &p.PictureRef, &p.IsUnderTransfer)
	if size.Valid {
		p.Size = &size.String
	}
	return p, err
}

func optionalProperty(row *sql.Row, what string) (*Property, error) {
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, what)
	}
	return &p, nil
}

func (s *PostgresStore) ListProperties(ctx context.Context, citizenID id.NationalID) ([]Property, error) {
	rows, err := s.exec(ctx).QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE citizen_id = $1 ORDER BY id`, citizenID.String())
	if err != nil {
		return nil, translate(err, "list properties")
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) FindProperty(ctx context.Context, owner id.NationalID, propertyID string) (*Property, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE citizen_id = $1 AND property_id = $2`,
		owner.String(), propertyID)
	return optionalProperty(row, "select property")
}

func (s *PostgresStore) FindPropertyUnderTransfer(ctx context.Context, owner id.NationalID) (*Property, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE citizen_id = $1 AND is_under_transfer`,
		owner.String())
	return optionalProperty(row, "select property under transfer")
}

func (s *PostgresStore) CreateProperty(ctx context.Context, p Property) error {
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO properties (`+propertyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.PropertyID, p.CitizenID.String(), p.Location, string(p.PropertyType),
		p.Description, p.Size, p.PictureRef, p.IsUnderTransfer,
	)
	return translate(err, "insert property")
}

func (s *PostgresStore) PromoteProperty(ctx context.Context, rowID uuid.UUID) error {
	res, err := s.exec(ctx).ExecContext(ctx,
		`UPDATE properties SET is_under_transfer = FALSE WHERE id = $1`, rowID)
	if err != nil {
		return translate(err, "promote property")
	}
	return expectOneRow(res, "promote property")
}

func (s *PostgresStore) DeleteProperty(ctx context.Context, rowID uuid.UUID) error {
	res, err := s.exec(ctx).ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, rowID)
	if err != nil {
		return translate(err, "delete property")
	}
	return expectOneRow(res, "delete property")
}

// -----------------------------------------------------------------------------
// Vehicles
// -----------------------------------------------------------------------------

const vehicleColumns = `id, serial_number, citizen_id, model, manufacturer, year, vehicle_type, picture_ref, plate_number, is_under_transfer`

func scanVehicle(row interface{ Scan(...any) error }) (Vehicle, error) {
	var v Vehicle
	err := row.Scan(&v.ID, &v.SerialNumber, &v.CitizenID, &v.Model, &v.Manufacturer,
		&v.Year, &v.VehicleType, &v.PictureRef, &v.PlateNumber, &v.IsUnderTransfer)
	return v, err
}

func optionalVehicle(row *sql.Row, what string) (*Vehicle, error) {
	v, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, what)
	}
	return &v, nil
}

func (s *PostgresStore) ListVehicles(ctx context.Context, citizenID id.NationalID) ([]Vehicle, error) {
	rows, err := s.exec(ctx).QueryContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE citizen_id = $1 ORDER BY id`, citizenID.String())
	if err != nil {
		return nil, translate(err, "list vehicles")
	}
	defer rows.Close()

	var out []Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) FindVehicle(ctx context.Context, owner id.NationalID, serialNumber string) (*Vehicle, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE citizen_id = $1 AND serial_number = $2`,
		owner.String(), serialNumber)
	return optionalVehicle(row, "select vehicle")
}

func (s *PostgresStore) FindVehicleUnderTransfer(ctx context.Context, owner id.NationalID) (*Vehicle, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE citizen_id = $1 AND is_under_transfer`,
		owner.String())
	return optionalVehicle(row, "select vehicle under transfer")
}

func (s *PostgresStore) CreateVehicle(ctx context.Context, v Vehicle) error {
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO vehicles (`+vehicleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.SerialNumber, v.CitizenID.String(), v.Model, v.Manufacturer,
		v.Year, string(v.VehicleType), v.PictureRef, v.PlateNumber, v.IsUnderTransfer,
	)
	return translate(err, "insert vehicle")
}

func (s *PostgresStore) PromoteVehicle(ctx context.Context, rowID uuid.UUID) error {
	res, err := s.exec(ctx).ExecContext(ctx,
		`UPDATE vehicles SET is_under_transfer = FALSE WHERE id = $1`, rowID)
	if err != nil {
		return translate(err, "promote vehicle")
	}
	return expectOneRow(res, "promote vehicle")
}

func (s *PostgresStore) DeleteVehicle(ctx context.Context, rowID uuid.UUID) error {
	res, err := s.exec(ctx).ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, rowID)
	if err != nil {
		return translate(err, "delete vehicle")
	}
	return expectOneRow(res, "delete vehicle")
}
