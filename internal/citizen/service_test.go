package citizen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/MindOfAhmed/DigitalSociety/internal/blob"
	"github.com/MindOfAhmed/DigitalSociety/internal/citizen"
	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/registration"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal"
	"github.com/MindOfAhmed/DigitalSociety/internal/storage"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/requestcontext"
)

const nationalID id.NationalID = "29801011234567"

type ServiceSuite struct {
	suite.Suite
	records       *records.InMemoryStore
	registrations *registration.Service
	service       *citizen.Service
	ctx           context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.records = records.NewInMemoryStore()
	renewals := renewal.NewInMemoryStore()
	registrations := registration.NewInMemoryStore()
	outbox := notification.NewInMemoryStore()
	notifier := notification.NewService(outbox)
	blobs, err := blob.NewFileStore(s.T().TempDir())
	s.Require().NoError(err)
	tx := storage.NewMemoryTx(s.records, renewals, registrations, outbox)

	s.registrations = registration.NewService(registrations, s.records, notifier, blobs, tx)
	s.service = citizen.NewService(s.records, notifier,
		renewal.NewService(renewals, s.records, nil, notifier, blobs, tx),
		s.registrations,
	)
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))

	s.Require().NoError(s.records.CreateCitizen(context.Background(), records.Citizen{
		NationalID:  nationalID,
		FirstName:   "Mona",
		LastName:    "Adel",
		DateOfBirth: time.Date(1998, 1, 1, 0, 0, 0, 0, time.UTC),
		Sex:         records.SexFemale,
		BloodType:   "O+",
	}))
}

func (s *ServiceSuite) TestDocumentsWithoutDocuments() {
	docs, err := s.service.Documents(s.ctx, nationalID)
	s.Require().NoError(err)
	s.Equal(nationalID, docs.Citizen.NationalID)
	s.Nil(docs.Passport)
	s.Nil(docs.DrivingLicense)
	s.Empty(docs.Addresses)
}

func (s *ServiceSuite) TestDocumentsIncludePassportAndPlaceholders() {
	s.Require().NoError(s.records.CreatePassport(context.Background(), records.Passport{
		Number:     "P1",
		CitizenID:  nationalID,
		IssueDate:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	_, err := s.registrations.Submit(s.ctx, nationalID, registration.Submission{
		Claim:         registration.AddressClaim{Line: records.AddressLine{Country: "Egypt", City: "Cairo", Street: "Tahrir"}},
		ProofDocument: []byte("lease"),
	})
	s.Require().NoError(err)

	docs, err := s.service.Documents(s.ctx, nationalID)
	s.Require().NoError(err)
	s.Require().NotNil(docs.Passport)
	s.Equal("P1", docs.Passport.Number)
	s.Require().Len(docs.Addresses, 1)
	s.Equal(records.AddressPendingRequest, docs.Addresses[0].State)
}

func (s *ServiceSuite) TestDocumentsUnknownCitizen() {
	_, err := s.service.Documents(s.ctx, "unknown")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestRequestsAndNotifications() {
	submitted, err := s.registrations.Submit(s.ctx, nationalID, registration.Submission{
		Claim:         registration.AddressClaim{Line: records.AddressLine{Country: "Egypt", City: "Giza", Street: "Haram"}},
		ProofDocument: []byte("lease"),
	})
	s.Require().NoError(err)

	reqs, err := s.service.Requests(s.ctx, nationalID)
	s.Require().NoError(err)
	s.Empty(reqs.Renewals)
	s.Require().Len(reqs.Registrations, 1)
	s.Equal(submitted.ID, reqs.Registrations[0].ID)

	notes, err := s.service.Notifications(s.ctx, nationalID)
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Contains(notes[0].Message, "Address Registration")
}
