package reports

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a reports repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "reports"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Summary aggregates inventory-wide compliance counts. Each aggregate runs as
// its own query; the group fails fast on the first error.
func (r *repo) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.count(ctx, "SELECT COUNT(*) FROM organizations", &summary.Organizations)
	})

	g.Go(func() error {
		return r.count(ctx, "SELECT COUNT(*) FROM ai_systems", &summary.Systems)
	})

	g.Go(func() error {
		counts, err := r.groupCount(ctx, "SELECT status, COUNT(*) FROM ai_systems GROUP BY status")
		if err != nil {
			return err
		}
		summary.SystemsByStatus = counts
		return nil
	})

	g.Go(func() error {
		counts, err := r.groupCount(
			ctx,
			"SELECT risk_level, COUNT(*) FROM ai_systems WHERE risk_level IS NOT NULL GROUP BY risk_level",
		)
		if err != nil {
			return err
		}
		summary.SystemsByRiskLevel = counts
		return nil
	})

	g.Go(func() error {
		return r.count(
			ctx,
			"SELECT COUNT(*) FROM assessments WHERE is_prohibited",
			&summary.ProhibitedSystems,
		)
	})

	g.Go(func() error {
		return r.count(
			ctx,
			"SELECT COUNT(*) FROM remediation_tasks WHERE status = 'open'",
			&summary.OpenTasks,
		)
	})

	g.Go(func() error {
		return r.count(
			ctx,
			"SELECT COUNT(*) FROM remediation_tasks WHERE status = 'open' AND deadline < NOW()",
			&summary.OverdueTasks,
		)
	})

	g.Go(func() error {
		return r.count(ctx, "SELECT COUNT(*) FROM evidence", &summary.EvidenceFiles)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}

	return summary, nil
}

func (r *repo) count(ctx context.Context, query string, dest *int) error {
	return r.db.QueryRowContext(ctx, query).Scan(dest)
}

func (r *repo) groupCount(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}

	return counts, rows.Err()
}
