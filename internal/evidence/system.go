package evidence

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/tutela/pkg/pagination"
	"github.com/JaimeStill/tutela/pkg/storage"
)

// System defines the public contract for evidence domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Evidence], error)

	Find(ctx context.Context, id uuid.UUID) (*Evidence, error)
	Create(ctx context.Context, cmd CreateCommand) (*Evidence, error)
	Download(ctx context.Context, id uuid.UUID) (*Evidence, *storage.DownloadResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
