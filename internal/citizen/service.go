// Package citizen serves the read-only views a signed-in citizen has of their
// own records, requests and notifications.
package citizen

import (
	"context"
	"errors"

	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/registration"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal"
	id "github.com/MindOfAhmed/DigitalSociety/pkg/domain"
	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
	"github.com/MindOfAhmed/DigitalSociety/pkg/platform/sentinel"
)

// RecordReader is the subset of the records store the views read.
type RecordReader interface {
	FindCitizen(ctx context.Context, citizenID id.NationalID) (*records.Citizen, error)
	FindPassportByCitizen(ctx context.Context, citizenID id.NationalID) (*records.Passport, error)
	FindLicenseByCitizen(ctx context.Context, citizenID id.NationalID) (*records.DrivingLicense, error)
	ListAddresses(ctx context.Context, citizenID id.NationalID) ([]records.Address, error)
	ListProperties(ctx context.Context, citizenID id.NationalID) ([]records.Property, error)
	ListVehicles(ctx context.Context, citizenID id.NationalID) ([]records.Vehicle, error)
}

type NotificationLister interface {
	ListForCitizen(ctx context.Context, citizenID id.NationalID) ([]notification.Notification, error)
}

type RenewalLister interface {
	ListForCitizen(ctx context.Context, citizenID id.NationalID) ([]renewal.Request, error)
}

type RegistrationLister interface {
	ListForCitizen(ctx context.Context, citizenID id.NationalID) ([]registration.Request, error)
}

// Documents is everything the registry holds about one citizen. Absent
// documents are nil; placeholders of pending registrations are included and
// flagged by their state or transfer marker.
type Documents struct {
	Citizen        records.Citizen         `json:"citizen"`
	Passport       *records.Passport       `json:"passport"`
	DrivingLicense *records.DrivingLicense `json:"driving_license"`
	Addresses      []records.Address       `json:"addresses"`
	Properties     []records.Property      `json:"properties"`
	Vehicles       []records.Vehicle       `json:"vehicles"`
}

// Requests lists the citizen's renewal and registration history.
type Requests struct {
	Renewals      []renewal.Request      `json:"renewals"`
	Registrations []registration.Request `json:"registrations"`
}

type Service struct {
	records       RecordReader
	notifications NotificationLister
	renewals      RenewalLister
	registrations RegistrationLister
}

func NewService(recordReader RecordReader, notifications NotificationLister, renewals RenewalLister, registrations RegistrationLister) *Service {
	return &Service{
		records:       recordReader,
		notifications: notifications,
		renewals:      renewals,
		registrations: registrations,
	}
}

func (s *Service) Documents(ctx context.Context, citizenID id.NationalID) (*Documents, error) {
	c, err := s.records.FindCitizen(ctx, citizenID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "citizen not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load citizen")
	}
	out := &Documents{Citizen: *c}

	if out.Passport, err = optional(s.records.FindPassportByCitizen(ctx, citizenID)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load passport")
	}
	if out.DrivingLicense, err = optional(s.records.FindLicenseByCitizen(ctx, citizenID)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load driving license")
	}
	if out.Addresses, err = s.records.ListAddresses(ctx, citizenID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list addresses")
	}
	if out.Properties, err = s.records.ListProperties(ctx, citizenID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list properties")
	}
	if out.Vehicles, err = s.records.ListVehicles(ctx, citizenID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list vehicles")
	}
	return out, nil
}

func (s *Service) Notifications(ctx context.Context, citizenID id.NationalID) ([]notification.Notification, error) {
	return s.notifications.ListForCitizen(ctx, citizenID)
}

func (s *Service) Requests(ctx context.Context, citizenID id.NationalID) (*Requests, error) {
	renewals, err := s.renewals.ListForCitizen(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	registrations, err := s.registrations.ListForCitizen(ctx, citizenID)
	if err != nil {
		return nil, err
	}
	return &Requests{Renewals: renewals, Registrations: registrations}, nil
}

// optional turns a not-found lookup into a nil result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
