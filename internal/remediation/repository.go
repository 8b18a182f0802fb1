package remediation

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/pagination"
	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

const taskColumns = `id, system_id, obligation_key, article, description,
		deadline, status, completed_by, completed_at, created_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a remediation task repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "remediation"),
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
) (*pagination.PageResult[Task], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Description", "Article")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count remediation tasks: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTask)
	if err != nil {
		return nil, fmt.Errorf("query remediation tasks: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Task, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTask)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

// Complete closes an open task. When the system has no open tasks left after
// the close, the system itself transitions to compliant.
func (r *repo) Complete(ctx context.Context, id uuid.UUID, cmd CompleteCommand) (*Task, error) {
	completeQ := `
		UPDATE remediation_tasks
		SET status = 'completed', completed_by = $1, completed_at = NOW()
		WHERE id = $2 AND status = 'open'
		RETURNING ` + taskColumns

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Task, error) {
		task, err := repository.QueryOne(ctx, tx, completeQ, []any{cmd.CompletedBy, id}, scanTask)
		if err != nil {
			return Task{}, repository.MapError(err, ErrAlreadyCompleted, ErrDuplicate)
		}

		var open int
		if err := tx.QueryRowContext(
			ctx,
			"SELECT COUNT(*) FROM remediation_tasks WHERE system_id = $1 AND status = 'open'",
			task.SystemID,
		).Scan(&open); err != nil {
			return Task{}, fmt.Errorf("count open remediation tasks: %w", err)
		}

		if open == 0 {
			if err := repository.ExecExpectOne(
				ctx, tx,
				"UPDATE ai_systems SET status = 'compliant', updated_at = NOW() WHERE id = $1",
				task.SystemID,
			); err != nil {
				return Task{}, ErrSystemNotFound
			}
		}

		return task, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("remediation task completed",
		"id", t.ID,
		"system_id", t.SystemID,
		"obligation", t.ObligationKey,
		"completed_by", cmd.CompletedBy,
	)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM remediation_tasks WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("remediation task deleted", "id", id)
	return nil
}
