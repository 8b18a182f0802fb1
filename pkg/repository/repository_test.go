package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/tutela/pkg/repository"
)

var (
	errSystemNotFound  = errors.New("ai system not found")
	errSystemDuplicate = errors.New("ai system already exists")
)

func TestMapErrorNil(t *testing.T) {
	if got := repository.MapError(nil, errSystemNotFound, errSystemDuplicate); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapErrorNotFound(t *testing.T) {
	got := repository.MapError(sql.ErrNoRows, errSystemNotFound, errSystemDuplicate)
	if !errors.Is(got, errSystemNotFound) {
		t.Errorf("MapError(sql.ErrNoRows) = %v, want %v", got, errSystemNotFound)
	}
}

func TestMapErrorWrappedNotFound(t *testing.T) {
	wrapped := fmt.Errorf("find system: %w", sql.ErrNoRows)
	got := repository.MapError(wrapped, errSystemNotFound, errSystemDuplicate)
	if !errors.Is(got, errSystemNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) = %v, want %v", got, errSystemNotFound)
	}
}

func TestMapErrorDuplicate(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "organizations_name_key"}
	got := repository.MapError(pgErr, errSystemNotFound, errSystemDuplicate)
	if !errors.Is(got, errSystemDuplicate) {
		t.Errorf("MapError(23505) = %v, want %v", got, errSystemDuplicate)
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	original := errors.New("connection refused")
	got := repository.MapError(original, errSystemNotFound, errSystemDuplicate)
	if !errors.Is(got, original) {
		t.Errorf("MapError(other) = %v, want %v", got, original)
	}
}

func TestMapErrorNonDuplicatePgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "remediation_tasks_system_id_fkey"}
	got := repository.MapError(pgErr, errSystemNotFound, errSystemDuplicate)
	if errors.Is(got, errSystemDuplicate) {
		t.Error("MapError(23503) mapped to duplicate, want passthrough")
	}
	if !errors.Is(got, pgErr) {
		t.Errorf("MapError(23503) = %v, want original", got)
	}
}
