package aisystems

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

const systemColumns = `id, organization_id, name, purpose, provider_role,
		deployment_context, status, risk_level, created_at, updated_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an AI system repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "aisystems"),
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
) (*pagination.PageResult[AISystem], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Purpose")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count ai systems: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAISystem)
	if err != nil {
		return nil, fmt.Errorf("query ai systems: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*AISystem, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	sys, err := repository.QueryOne(ctx, r.db, q, args, scanAISystem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &sys, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*AISystem, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrMissingName
	}

	q := `
		INSERT INTO ai_systems(organization_id, name, purpose, provider_role, deployment_context, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + systemColumns

	args := []any{
		cmd.OrganizationID,
		cmd.Name,
		cmd.Purpose,
		cmd.ProviderRole,
		cmd.DeploymentContext,
		string(StatusDraft),
	}

	sys, err := repository.QueryOne(ctx, r.db, q, args, scanAISystem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ai system registered",
		"id", sys.ID,
		"organization_id", sys.OrganizationID,
		"name", sys.Name,
	)
	return &sys, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*AISystem, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, ErrMissingName
	}

	q := `
		UPDATE ai_systems
		SET name = $1, purpose = $2, provider_role = $3, deployment_context = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + systemColumns

	args := []any{
		cmd.Name,
		cmd.Purpose,
		cmd.ProviderRole,
		cmd.DeploymentContext,
		id,
	}

	sys, err := repository.QueryOne(ctx, r.db, q, args, scanAISystem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ai system updated", "id", sys.ID, "name", sys.Name)
	return &sys, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM ai_systems WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ai system deleted", "id", id)
	return nil
}
