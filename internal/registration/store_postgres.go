package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/MindOfAhmed/DigitalSociety/internal/platform/postgres"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
	txcontext "github.com/MindOfAhmed/DigitalSociety/pkg/platform/tx"
)

const selectColumns = `id, citizen_id, request_type, subject, proof_document_ref, previous_owner_id,
	status, submitted_at, reviewed_at, reviewed_by, rejection_reason`

// PostgresStore persists registration requests. The one-pending rule is the
// registration_requests_one_pending partial unique index.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) exec(ctx context.Context) txcontext.Executor {
	return txcontext.ExecutorFrom(ctx, s.db)
}

func (s *PostgresStore) Create(ctx context.Context, r Request) error {
	var previousOwner sql.NullString
	if r.PreviousOwnerID != nil {
		previousOwner = sql.NullString{String: r.PreviousOwnerID.String(), Valid: true}
	}
	_, err := s.exec(ctx).ExecContext(ctx, `
		INSERT INTO registration_requests (id, citizen_id, request_type, subject, proof_document_ref,
			previous_owner_id, status, submitted_at, reviewed_at, reviewed_by, rejection_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		uuid.UUID(r.ID), r.CitizenID.String(), string(r.Type), r.Subject, r.ProofDocumentRef,
		previousOwner, string(r.Status), r.SubmittedAt, r.ReviewedAt, r.ReviewedBy, r.RejectionReason,
	)
	if postgres.IsUniqueViolation(err, "registration_requests_one_pending") {
		return fmt.Errorf("pending %s for %s: %w", r.Type, r.CitizenID, sentinel.ErrAlreadyUsed)
	}
	if err != nil {
		return fmt.Errorf("insert registration request: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, requestID id.RequestID) (*Request, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM registration_requests WHERE id = $1`, uuid.UUID(requestID))
	r, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select registration request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) FindPending(ctx context.Context, citizenID id.NationalID, t RequestType) (*Request, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM registration_requests
		WHERE citizen_id = $1 AND request_type = $2 AND status = 'Pending'`,
		citizenID.String(), string(t))
	r, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select pending registration request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListPending(ctx context.Context, types ...RequestType) ([]Request, error) {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	rows, err := s.exec(ctx).QueryContext(ctx,
		`SELECT `+selectColumns+` FROM registration_requests
		WHERE status = 'Pending' AND (cardinality($1::text[]) = 0 OR request_type = ANY($1::text[]))
		ORDER BY submitted_at, id`, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("list pending registration requests: %w", err)
	}
	return collect(rows)
}

func (s *PostgresStore) ListByCitizen(ctx context.Context, citizenID id.NationalID) ([]Request, error) {
	rows, err := s.exec(ctx).QueryContext(ctx,
		`SELECT `+selectColumns+` FROM registration_requests WHERE citizen_id = $1 ORDER BY submitted_at, id`,
		citizenID.String())
	if err != nil {
		return nil, fmt.Errorf("list registration requests: %w", err)
	}
	return collect(rows)
}

// Execute locks the row with FOR UPDATE; run it inside RunInTx.
func (s *PostgresStore) Execute(ctx context.Context, requestID id.RequestID, validate func(*Request) error, mutate func(*Request)) (*Request, error) {
	row := s.exec(ctx).QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM registration_requests WHERE id = $1 FOR UPDATE`, uuid.UUID(requestID))
	r, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock registration request: %w", err)
	}
	if err := validate(r); err != nil {
		return nil, err
	}
	mutate(r)

	_, err = s.exec(ctx).ExecContext(ctx, `
		UPDATE registration_requests
		SET status = $2, reviewed_at = $3, reviewed_by = $4, rejection_reason = $5
		WHERE id = $1`,
		uuid.UUID(r.ID), string(r.Status), r.ReviewedAt, r.ReviewedBy, r.RejectionReason,
	)
	if err != nil {
		return nil, fmt.Errorf("update registration request: %w", err)
	}
	return r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*Request, error) {
	var (
		r             Request
		rawID         uuid.UUID
		previousOwner sql.NullString
		reviewedAt    sql.NullTime
		rejection     sql.NullString
	)
	err := row.Scan(&rawID, &r.CitizenID, &r.Type, &r.Subject, &r.ProofDocumentRef, &previousOwner,
		&r.Status, &r.SubmittedAt, &reviewedAt, &r.ReviewedBy, &rejection)
	if err != nil {
		return nil, err
	}
	r.ID = id.RequestID(rawID)
	r.SubmittedAt = r.SubmittedAt.UTC()
	if previousOwner.Valid {
		owner := id.NationalID(previousOwner.String)
		r.PreviousOwnerID = &owner
	}
	if reviewedAt.Valid {
		t := time.Date(reviewedAt.Time.Year(), reviewedAt.Time.Month(), reviewedAt.Time.Day(), 0, 0, 0, 0, time.UTC)
		r.ReviewedAt = &t
	}
	if rejection.Valid {
		r.RejectionReason = &rejection.String
	}
	return &r, nil
}

func collect(rows *sql.Rows) ([]Request, error) {
	defer rows.Close()
	var out []Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration request: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registration requests: %w", err)
	}
	return out, nil
}
