package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"wohnheimsbot/internal/domain/ports/repository"
)

// Compile-time check
var _ ShoppingUseCase = (*shoppingUC)(nil)

// ShoppingUseCase manages the shared shopping list.
type ShoppingUseCase interface {
	Add(ctx context.Context, item string) error
	List(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type shoppingUC struct {
	items  repository.ShoppingRepository
	locker repository.Locker
	log    *zerolog.Logger
}

func NewShoppingUseCase(items repository.ShoppingRepository, locker repository.Locker, logger *zerolog.Logger) *shoppingUC {
	return &shoppingUC{items: items, locker: locker, log: logger}
}

func (u *shoppingUC) Add(ctx context.Context, item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return errors.New("empty shopping list item")
	}
	return u.locker.WithLock(ctx, func() error {
		return u.items.Add(ctx, item)
	})
}

func (u *shoppingUC) List(ctx context.Context) ([]string, error) {
	return u.items.List(ctx)
}

func (u *shoppingUC) Clear(ctx context.Context) error {
	err := u.locker.WithLock(ctx, func() error {
		return u.items.Clear(ctx)
	})
	if err == nil {
		u.log.Info().Msg("shopping list cleared")
	}
	return err
}
