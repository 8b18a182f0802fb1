package organizations

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/pagination"
)

// System defines the business operations for client organizations.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Organization], error)
	Find(ctx context.Context, id uuid.UUID) (*Organization, error)
	Create(ctx context.Context, cmd CreateCommand) (*Organization, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
