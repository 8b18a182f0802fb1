package reports

import "context"

// System defines the business operations for compliance reporting.
type System interface {
	Handler() *Handler
	Summary(ctx context.Context) (*Summary, error)
}
