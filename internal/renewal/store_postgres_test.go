//go:build integration

package renewal_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/MindOfAhmed/DigitalSociety/internal/blob"
	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	"github.com/MindOfAhmed/DigitalSociety/internal/photo"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/postgres"
	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal/mocks"
	"github.com/MindOfAhmed/DigitalSociety/internal/request"
	"github.com/MindOfAhmed/DigitalSociety/internal/storage"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
	"github.com/MindOfAhmed/DigitalSociety/pkg/testutil/containers"
)

type PostgresWorkflowSuite struct {
	suite.Suite
	pg       *containers.PostgresContainer
	records  *records.PostgresStore
	requests *renewal.PostgresStore
	outbox   *notification.PostgresStore
	service  *renewal.Service
	ctx      context.Context
}

func TestPostgresWorkflowSuite(t *testing.T) {
	suite.Run(t, new(PostgresWorkflowSuite))
}

func (s *PostgresWorkflowSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(context.Background(), s.pg.DB))
}

func (s *PostgresWorkflowSuite) SetupTest() {
	_, err := s.pg.DB.Exec(`TRUNCATE citizens CASCADE`)
	s.Require().NoError(err)

	ctrl := gomock.NewController(s.T())
	photos := mocks.NewMockPhotoValidator(ctrl)
	photos.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(photo.Verdict{Accepted: true}).AnyTimes()
	blobs, err := blob.NewFileStore(s.T().TempDir())
	s.Require().NoError(err)

	s.records = records.NewPostgresStore(s.pg.DB)
	s.requests = renewal.NewPostgresStore(s.pg.DB)
	s.outbox = notification.NewPostgresStore(s.pg.DB)
	s.service = renewal.NewService(s.requests, s.records, photos, notification.NewService(s.outbox), blobs,
		storage.NewPostgresTx(s.pg.DB, 5*time.Second))
	s.ctx = requestcontext.WithTime(context.Background(), now)

	s.Require().NoError(s.records.CreateCitizen(context.Background(), records.Citizen{
		NationalID:  citizen,
		FirstName:   "Mona",
		LastName:    "Adel",
		DateOfBirth: time.Date(1998, 1, 1, 0, 0, 0, 0, time.UTC),
		Sex:         records.SexFemale,
		BloodType:   "O+",
	}))
	s.Require().NoError(s.records.CreatePassport(context.Background(), records.Passport{
		Number:     "P1",
		CitizenID:  citizen,
		IssueDate:  request.AddDays(today, -2000),
		ExpiryDate: request.AddDays(today, 100),
		PictureRef: "pictures/original",
	}))
}

func (s *PostgresWorkflowSuite) claim() renewal.PassportClaim {
	return renewal.PassportClaim{
		Number:     "P1",
		IssueDate:  request.AddDays(today, -2000),
		ExpiryDate: request.AddDays(today, 100),
	}
}

func (s *PostgresWorkflowSuite) TestSubmitAndApprove() {
	submitted, err := s.service.Submit(s.ctx, citizen, renewal.Submission{Claim: s.claim(), Picture: []byte("face")})
	s.Require().NoError(err)

	pending, err := s.service.ListPending(s.ctx, renewal.TypePassport)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(submitted.ID, pending[0].ID)

	approved, err := s.service.Approve(s.ctx, submitted.ID, inspector)
	s.Require().NoError(err)
	s.Equal(request.StatusApproved, approved.Status)

	p, err := s.records.FindPassportByCitizen(context.Background(), citizen)
	s.Require().NoError(err)
	s.True(p.ExpiryDate.Equal(request.AddDays(today, 1825)))
	s.Equal(submitted.PictureRef, p.PictureRef)

	notes, err := s.outbox.ListByCitizen(context.Background(), citizen)
	s.Require().NoError(err)
	s.Len(notes, 2)
}

func (s *PostgresWorkflowSuite) TestOnePendingPerType() {
	_, err := s.service.Submit(s.ctx, citizen, renewal.Submission{Claim: s.claim(), Picture: []byte("face")})
	s.Require().NoError(err)

	_, err = s.service.Submit(s.ctx, citizen, renewal.Submission{Claim: s.claim(), Picture: []byte("face")})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *PostgresWorkflowSuite) TestRejectStoresReason() {
	submitted, err := s.service.Submit(s.ctx, citizen, renewal.Submission{Claim: s.claim(), Picture: []byte("face")})
	s.Require().NoError(err)

	_, err = s.service.Reject(s.ctx, submitted.ID, inspector, "")
	s.Require().NoError(err)

	stored, err := s.requests.FindByID(context.Background(), submitted.ID)
	s.Require().NoError(err)
	s.Equal(request.StatusRejected, stored.Status)
	s.Require().NotNil(stored.RejectionReason)
	s.Empty(*stored.RejectionReason)
	s.Require().NotNil(stored.ReviewedAt)
	s.True(stored.ReviewedAt.Equal(today))

	_, err = s.service.Approve(s.ctx, submitted.ID, inspector)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *PostgresWorkflowSuite) TestConcurrentSubmitsKeepOnePending() {
	const attempts = 6
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.service.Submit(s.ctx, citizen, renewal.Submission{Claim: s.claim(), Picture: []byte("face")})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(dErrors.HasCode(err, dErrors.CodeConflict), "unexpected error: %v", err)
		s.Equal("You already have a pending request.", dErrors.MessageOf(err))
	}
	s.Equal(1, succeeded)

	pending, err := s.requests.ListPending(context.Background(), renewal.TypePassport)
	s.Require().NoError(err)
	s.Len(pending, 1)
	notes, err := s.outbox.ListByCitizen(context.Background(), citizen)
	s.Require().NoError(err)
	s.Len(notes, 1)
}
