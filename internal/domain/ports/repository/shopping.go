package repository

import "context"

// ShoppingRepository stores the shared shopping list.
type ShoppingRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, item string) error
	Clear(ctx context.Context) error
}
