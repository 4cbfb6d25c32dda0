// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/models"
)

var resetCodeTestColumns = []string{"id", "user_id", "email", "code", "expires_at", "created_at"}

func newTestResetCodeRepo(t *testing.T) (*resetCodeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &resetCodeRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func sampleResetCode(now time.Time) models.ResetCode {
	return models.ResetCode{
		ID:        "2f0c9f5e-9f3a-4e68-b0a3-0a30a8a0e001",
		UserID:    5,
		Email:     "kate@example.com",
		Code:      "482913",
		ExpiresAt: now.Add(10 * time.Minute),
		CreatedAt: now,
	}
}

func TestUpsertResetCode_Success(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	now := time.Now()
	code := sampleResetCode(now)

	rows := sqlmock.NewRows(resetCodeTestColumns).
		AddRow(code.ID, code.UserID, code.Email, code.Code, code.ExpiresAt, code.CreatedAt)

	mock.ExpectQuery("INSERT INTO password_reset_codes").
		WithArgs(code.ID, code.UserID, code.Email, code.Code, code.ExpiresAt, code.CreatedAt).
		WillReturnRows(rows)

	stored, err := repo.UpsertResetCode(context.Background(), code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Code != "482913" || stored.UserID != 5 {
		t.Errorf("unexpected stored record: %+v", stored)
	}
}

func TestUpsertResetCode_QueryShape(t *testing.T) {
	// The statement must replace in place, not delete-then-insert.
	query, args, err := buildUpsertResetCode(sampleResetCode(time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "ON CONFLICT (user_id) DO UPDATE") {
		t.Errorf("expected owner-keyed upsert, got: %s", query)
	}
	if len(args) != 6 {
		t.Errorf("expected 6 args, got %d", len(args))
	}
}

func TestUpsertResetCode_DBError(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO password_reset_codes").
		WillReturnError(errors.New("db down"))

	_, err := repo.UpsertResetCode(context.Background(), sampleResetCode(time.Now()))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFindLiveResetCode_Success(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	now := time.Now()
	code := sampleResetCode(now)

	rows := sqlmock.NewRows(resetCodeTestColumns).
		AddRow(code.ID, code.UserID, code.Email, code.Code, code.ExpiresAt, code.CreatedAt)

	mock.ExpectQuery("SELECT id, user_id, email, code, expires_at, created_at FROM password_reset_codes").
		WithArgs(code.Email, code.Code, sqlmock.AnyArg()).
		WillReturnRows(rows)

	found, err := repo.FindLiveResetCode(context.Background(), code.Email, code.Code, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != code.ID {
		t.Errorf("expected id %s, got %s", code.ID, found.ID)
	}
}

func TestFindLiveResetCode_NotFound(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, email, code, expires_at, created_at FROM password_reset_codes").
		WillReturnRows(sqlmock.NewRows(resetCodeTestColumns))

	_, err := repo.FindLiveResetCode(context.Background(), "x@y.io", "000000", time.Now())
	if !errors.Is(err, ErrResetCodeNotFound) {
		t.Fatalf("expected ErrResetCodeNotFound, got %v", err)
	}
}

func TestFindLiveResetCode_QueryShape(t *testing.T) {
	// Expiry filtering happens at query time with a strict comparison.
	now := time.Now()
	query, args, err := buildFindLiveResetCode("kate@example.com", "482913", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "expires_at > ") {
		t.Errorf("expected strict expiry filter, got: %s", query)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFindResetCodeByOwner_Success(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	now := time.Now()
	code := sampleResetCode(now)

	rows := sqlmock.NewRows(resetCodeTestColumns).
		AddRow(code.ID, code.UserID, code.Email, code.Code, code.ExpiresAt, code.CreatedAt)

	mock.ExpectQuery("SELECT id, user_id, email, code, expires_at, created_at FROM password_reset_codes").
		WithArgs(code.UserID).
		WillReturnRows(rows)

	found, err := repo.FindResetCodeByOwner(context.Background(), code.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != code.UserID {
		t.Errorf("expected user id %d, got %d", code.UserID, found.UserID)
	}
}

func TestDeleteResetCode_Success(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM password_reset_codes").
		WithArgs("some-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteResetCode(context.Background(), "some-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteResetCode_AbsentRowIsNotAnError(t *testing.T) {
	repo, mock, db := newTestResetCodeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM password_reset_codes").
		WithArgs("gone-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteResetCode(context.Background(), "gone-id"); err != nil {
		t.Fatalf("expected nil for zero affected rows, got %v", err)
	}
}
