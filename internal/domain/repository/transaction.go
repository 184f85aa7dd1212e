package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Implementations hold the transaction handle internally.
type RepositoryFactory interface {
	NewCartRepository() CartRepository
}

// TransactionManager runs a unit of work inside a single database transaction.
// The merge operation uses it so the user-cart write and the stale session-cart
// delete either both land or neither does.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
