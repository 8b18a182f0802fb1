package remediation

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/pagination"
)

// System defines the business operations for remediation tasks.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Task], error)
	Find(ctx context.Context, id uuid.UUID) (*Task, error)
	Complete(ctx context.Context, id uuid.UUID, cmd CompleteCommand) (*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
