package organizations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/pagination"
	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

const organizationColumns = "id, name, sector, contact_email, created_at, updated_at"

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an organization repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "organizations"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Organization], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "ContactEmail")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count organizations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOrganization)
	if err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Organization, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	org, err := repository.QueryOne(ctx, r.db, q, args, scanOrganization)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &org, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Organization, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrMissingName
	}

	q := `
		INSERT INTO organizations(name, sector, contact_email)
		VALUES ($1, $2, $3)
		RETURNING ` + organizationColumns

	org, err := repository.QueryOne(
		ctx, r.db, q,
		[]any{cmd.Name, cmd.Sector, cmd.ContactEmail},
		scanOrganization,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization created", "id", org.ID, "name", org.Name)
	return &org, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Organization, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrMissingName
	}

	q := `
		UPDATE organizations
		SET name = $1, sector = $2, contact_email = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + organizationColumns

	org, err := repository.QueryOne(
		ctx, r.db, q,
		[]any{cmd.Name, cmd.Sector, cmd.ContactEmail, id},
		scanOrganization,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization updated", "id", org.ID, "name", org.Name)
	return &org, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM organizations WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("organization deleted", "id", id)
	return nil
}
