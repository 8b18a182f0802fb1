package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/internal/catalog"
	"github.com/JaimeStill/tutela/internal/classifier"
	"github.com/JaimeStill/tutela/pkg/pagination"
	"github.com/JaimeStill/tutela/pkg/query"
	"github.com/JaimeStill/tutela/pkg/repository"
)

const returningColumns = `id, system_id, risk_level, is_prohibited, score,
		prohibition_reasons, applicable_articles, obligations, recommendations,
		summary, detailed_explanation, locale, assessed_at,
		reviewed_by, reviewed_at, override_rationale`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	taskWindow time.Duration
}

// New creates an assessment repository implementing the System interface.
// taskWindow is the remediation deadline granted for each obligation derived
// from a classification.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	taskWindow time.Duration,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "assessments"),
		pagination: pagination,
		taskWindow: taskWindow,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Assessment], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Summary", "DetailedExplanation")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count assessments: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) FindBySystem(ctx context.Context, systemID uuid.UUID) (*Assessment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("SystemID", systemID)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

// Preview runs the classification engine without touching storage. It backs
// the questionnaire UI's dry-run view and enforces the same answer gate as a
// persisted classification.
func (r *repo) Preview(cmd ClassifyCommand) (*classifier.Result, error) {
	if !catalog.CanClassify(cmd.Answers) {
		return nil, ErrInsufficientAnswers
	}

	result := classifier.Classify(cmd.Answers, catalog.ParseLocale(cmd.Locale))
	return &result, nil
}

func (r *repo) Classify(ctx context.Context, systemID uuid.UUID, cmd ClassifyCommand) (*Assessment, error) {
	if !catalog.CanClassify(cmd.Answers) {
		return nil, ErrInsufficientAnswers
	}

	result := classifier.Classify(cmd.Answers, catalog.ParseLocale(cmd.Locale))

	reasonsJSON, err := json.Marshal(result.ProhibitionReasons)
	if err != nil {
		return nil, fmt.Errorf("marshal prohibition reasons: %w", err)
	}
	articlesJSON, err := json.Marshal(result.ApplicableArticles)
	if err != nil {
		return nil, fmt.Errorf("marshal applicable articles: %w", err)
	}
	obligationsJSON, err := json.Marshal(result.Obligations)
	if err != nil {
		return nil, fmt.Errorf("marshal obligations: %w", err)
	}
	recommendationsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	upsertQ := `
		INSERT INTO assessments(
			system_id, risk_level, is_prohibited, score,
			prohibition_reasons, applicable_articles, obligations, recommendations,
			summary, detailed_explanation, locale
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (system_id) DO UPDATE SET
			risk_level = EXCLUDED.risk_level,
			is_prohibited = EXCLUDED.is_prohibited,
			score = EXCLUDED.score,
			prohibition_reasons = EXCLUDED.prohibition_reasons,
			applicable_articles = EXCLUDED.applicable_articles,
			obligations = EXCLUDED.obligations,
			recommendations = EXCLUDED.recommendations,
			summary = EXCLUDED.summary,
			detailed_explanation = EXCLUDED.detailed_explanation,
			locale = EXCLUDED.locale,
			assessed_at = NOW(),
			reviewed_by = NULL,
			reviewed_at = NULL,
			override_rationale = NULL
		RETURNING ` + returningColumns

	upsertArgs := []any{
		systemID,
		string(result.RiskLevel),
		result.IsProhibited,
		result.Score,
		reasonsJSON,
		articlesJSON,
		obligationsJSON,
		recommendationsJSON,
		result.Summary,
		result.DetailedExplanation,
		string(result.Locale),
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		as, err := repository.QueryOne(ctx, tx, upsertQ, upsertArgs, scanAssessment)
		if err != nil {
			return Assessment{}, fmt.Errorf("upsert assessment: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE ai_systems SET status = 'assessed', risk_level = $1, updated_at = NOW() WHERE id = $2",
			string(result.RiskLevel), systemID,
		); err != nil {
			return Assessment{}, ErrSystemNotFound
		}

		if err := r.regenerateTasks(ctx, tx, systemID, result.Obligations); err != nil {
			return Assessment{}, err
		}

		return as, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("system classified",
		"id", a.ID,
		"system_id", systemID,
		"risk_level", a.RiskLevel,
		"prohibited", a.IsProhibited,
		"score", a.Score,
	)
	return &a, nil
}

// regenerateTasks replaces the system's open remediation tasks with one task
// per obligation from the fresh classification. Completed tasks are kept as
// history.
func (r *repo) regenerateTasks(
	ctx context.Context,
	tx *sql.Tx,
	systemID uuid.UUID,
	obligations []classifier.Obligation,
) error {
	if _, err := tx.ExecContext(
		ctx,
		"DELETE FROM remediation_tasks WHERE system_id = $1 AND status = 'open'",
		systemID,
	); err != nil {
		return fmt.Errorf("clear open remediation tasks: %w", err)
	}

	deadline := time.Now().Add(r.taskWindow)

	for _, o := range obligations {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO remediation_tasks(system_id, obligation_key, article, description, deadline)
			 VALUES ($1, $2, $3, $4, $5)`,
			systemID, o.Key, o.Article, o.Description, deadline,
		); err != nil {
			return fmt.Errorf("insert remediation task %s: %w", o.Key, err)
		}
	}

	return nil
}

func (r *repo) Review(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Assessment, error) {
	reviewQ := `
		UPDATE assessments
		SET reviewed_by = $1, reviewed_at = NOW()
		WHERE id = $2 AND reviewed_at IS NULL
		RETURNING ` + returningColumns

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		as, err := repository.QueryOne(ctx, tx, reviewQ, []any{cmd.ReviewedBy, id}, scanAssessment)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return Assessment{}, r.reviewMissError(ctx, tx, id)
			}
			return Assessment{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		if err := r.settleSystemStatus(ctx, tx, &as); err != nil {
			return Assessment{}, err
		}

		return as, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("assessment reviewed",
		"id", a.ID,
		"reviewed_by", cmd.ReviewedBy,
	)
	return &a, nil
}

// reviewMissError distinguishes a review that found no row: the assessment
// either does not exist (not found) or is already reviewed (conflict).
func (r *repo) reviewMissError(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	var exists bool
	if err := tx.QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM assessments WHERE id = $1)",
		id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check assessment existence: %w", err)
	}

	return reviewStateError(exists)
}

// reviewStateError maps the existence of an unreviewable assessment row to
// the matching domain error.
func reviewStateError(exists bool) error {
	if exists {
		return ErrAlreadyReviewed
	}
	return ErrNotFound
}

func (r *repo) Override(ctx context.Context, id uuid.UUID, cmd OverrideCommand) (*Assessment, error) {
	level, err := classifier.ParseRiskLevel(cmd.RiskLevel)
	if err != nil {
		return nil, ErrInvalidRiskLevel
	}

	overrideQ := `
		UPDATE assessments
		SET risk_level = $1, is_prohibited = $2, override_rationale = $3,
			reviewed_by = $4, reviewed_at = NOW()
		WHERE id = $5
		RETURNING ` + returningColumns

	overrideArgs := []any{
		string(level),
		level == classifier.RiskUnacceptable,
		cmd.Rationale,
		cmd.UpdatedBy,
		id,
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		as, err := repository.QueryOne(ctx, tx, overrideQ, overrideArgs, scanAssessment)
		if err != nil {
			return Assessment{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE ai_systems SET risk_level = $1, updated_at = NOW() WHERE id = $2",
			string(level), as.SystemID,
		); err != nil {
			return Assessment{}, ErrSystemNotFound
		}

		// An override to unacceptable removes the comply path; open tasks
		// from the previous verdict no longer apply.
		if level == classifier.RiskUnacceptable {
			if _, err := tx.ExecContext(
				ctx,
				"DELETE FROM remediation_tasks WHERE system_id = $1 AND status = 'open'",
				as.SystemID,
			); err != nil {
				return Assessment{}, fmt.Errorf("clear open remediation tasks: %w", err)
			}
		}

		if err := r.settleSystemStatus(ctx, tx, &as); err != nil {
			return Assessment{}, err
		}

		return as, nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Info("assessment overridden",
		"id", a.ID,
		"risk_level", cmd.RiskLevel,
		"updated_by", cmd.UpdatedBy,
	)
	return &a, nil
}

// settleSystemStatus resolves the system's status after a human review.
// Prohibited verdicts carry no obligations and therefore no comply path, so
// the system stays at assessed. Otherwise the system moves to remediation
// while open tasks remain, or compliant when none do.
func (r *repo) settleSystemStatus(ctx context.Context, tx *sql.Tx, as *Assessment) error {
	open := 0
	if !as.IsProhibited {
		if err := tx.QueryRowContext(
			ctx,
			"SELECT COUNT(*) FROM remediation_tasks WHERE system_id = $1 AND status = 'open'",
			as.SystemID,
		).Scan(&open); err != nil {
			return fmt.Errorf("count open remediation tasks: %w", err)
		}
	}

	if err := repository.ExecExpectOne(
		ctx, tx,
		"UPDATE ai_systems SET status = $1, updated_at = NOW() WHERE id = $2",
		settledStatus(as.IsProhibited, open), as.SystemID,
	); err != nil {
		return ErrSystemNotFound
	}

	return nil
}

// settledStatus decides the post-review status of an AI system.
func settledStatus(prohibited bool, openTasks int) string {
	switch {
	case prohibited:
		return "assessed"
	case openTasks > 0:
		return "remediation"
	default:
		return "compliant"
	}
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM assessments WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("assessment deleted", "id", id)
	return nil
}
