package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/category"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/model/review"
	"ordertrack/internal/core/domain/model/user"
)

// Lookup clients for entities owned by other services. Each collaborator
// exposes a single-item lookup and a batch lookup; batch lookups omit
// missing ids rather than failing. A collaborator that is unreachable or
// returns an unexpected error surfaces an errs.RemoteCallFailedError with
// the service name attached.
type (
	// UserClient fetches users from the user service.
	UserClient interface {
		GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)
		GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*user.User, error)
	}

	// ProductClient fetches products from the product service.
	ProductClient interface {
		GetByID(ctx context.Context, id kernel.UUID) (*product.Product, error)
		GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
	}

	// CategoryClient fetches categories from the product service by their
	// natural key, the category name.
	CategoryClient interface {
		GetByName(ctx context.Context, name string) (*category.Category, error)
		GetByNames(ctx context.Context, names []string) ([]*category.Category, error)
	}

	// ReviewClient fetches reviews from the review service.
	ReviewClient interface {
		GetByID(ctx context.Context, id kernel.UUID) (*review.Review, error)
		GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*review.Review, error)
	}
)
