package category

import "context"

type Repository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	// ListActive returns categories available for new tickets.
	ListActive(ctx context.Context) ([]*Category, error)
	ListAll(ctx context.Context) ([]*Category, error)
}
