package assessments

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/internal/classifier"
	"github.com/JaimeStill/tutela/pkg/pagination"
)

// System defines the public contract for assessment domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Assessment], error)

	Find(ctx context.Context, id uuid.UUID) (*Assessment, error)
	FindBySystem(ctx context.Context, systemID uuid.UUID) (*Assessment, error)
	Classify(ctx context.Context, systemID uuid.UUID, cmd ClassifyCommand) (*Assessment, error)
	Preview(cmd ClassifyCommand) (*classifier.Result, error)
	Review(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Assessment, error)
	Override(ctx context.Context, id uuid.UUID, cmd OverrideCommand) (*Assessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
