package filestore

import (
	"context"
	"errors"

	"wohnheimsbot/internal/domain"
	"wohnheimsbot/internal/domain/ports/repository"
)

var _ repository.ShoppingRepository = (*ShoppingRepo)(nil)

// ShoppingRepo persists the shared shopping list as shopping_list.json.
type ShoppingRepo struct {
	store *Store
}

func NewShoppingRepo(store *Store) *ShoppingRepo {
	return &ShoppingRepo{store: store}
}

func (r *ShoppingRepo) List(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

func (r *ShoppingRepo) Add(ctx context.Context, item string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	items = append(items, item)
	return r.store.writeJSON(shoppingListFile, items)
}

func (r *ShoppingRepo) Clear(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.writeJSON(shoppingListFile, []string{})
}

func (r *ShoppingRepo) load() ([]string, error) {
	var items []string
	if err := r.store.readJSON(shoppingListFile, &items); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
