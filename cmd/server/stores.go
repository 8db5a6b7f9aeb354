package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/MindOfAhmed/DigitalSociety/internal/citizen"
	"github.com/MindOfAhmed/DigitalSociety/internal/notification"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/config"
	"github.com/MindOfAhmed/DigitalSociety/internal/platform/postgres"
	"github.com/MindOfAhmed/DigitalSociety/internal/records"
	"github.com/MindOfAhmed/DigitalSociety/internal/registration"
	"github.com/MindOfAhmed/DigitalSociety/internal/renewal"
	"github.com/MindOfAhmed/DigitalSociety/internal/storage"
)

type recordStore interface {
	renewal.DocumentStore
	registration.RecordStore
	citizen.RecordReader
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// stores groups the persistence backends shared by the workflows. All of
// them are either Postgres or in-memory; the two are never mixed.
type stores struct {
	records       recordStore
	renewals      renewal.Store
	registrations registration.Store
	notifications notification.Store
	tx            txRunner
	db            *sql.DB
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStores(ctx context.Context, cfg config.Server) (*stores, error) {
	if !cfg.UsePostgres() {
		recs := records.NewInMemoryStore()
		renewals := renewal.NewInMemoryStore()
		registrations := registration.NewInMemoryStore()
		notifications := notification.NewInMemoryStore()
		return &stores{
			records:       recs,
			renewals:      renewals,
			registrations: registrations,
			notifications: notifications,
			tx:            storage.NewMemoryTx(recs, renewals, registrations, notifications).WithTimeout(cfg.TxTimeout),
		}, nil
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := postgres.Migrate(migrateCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &stores{
		records:       records.NewPostgresStore(db),
		renewals:      renewal.NewPostgresStore(db),
		registrations: registration.NewPostgresStore(db),
		notifications: notification.NewPostgresStore(db),
		tx:            storage.NewPostgresTx(db, cfg.TxTimeout),
		db:            db,
	}, nil
}
