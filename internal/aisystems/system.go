package aisystems

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/pagination"
)

// System defines the business operations for the AI system inventory.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[AISystem], error)
	Find(ctx context.Context, id uuid.UUID) (*AISystem, error)
	Create(ctx context.Context, cmd CreateCommand) (*AISystem, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*AISystem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
