package favorite

import (
	"context"
	"fmt"
	"slices"

	"travelbook/internal/domain/catalog"
)

// ItemChecker confirms a catalog item exists.
type ItemChecker interface {
	Exists(ctx context.Context, kind catalog.Kind, id int64) (bool, error)
}

type Service struct {
	repo  Repository
	items ItemChecker
}

func NewService(repo Repository, items ItemChecker) *Service {
	return &Service{repo: repo, items: items}
}

func (s *Service) Add(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) (*Favorite, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	ok, err := s.items.Exists(ctx, kind, itemID)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}
	if !ok {
		return nil, ErrItemNotFound
	}

	f := &Favorite{UserID: userID, ItemType: kind, ItemID: itemID}
	if err := s.repo.Add(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	return s.repo.Remove(ctx, userID, kind, itemID)
}

func (s *Service) IsFavorite(ctx context.Context, userID int64, kind catalog.Kind, itemID int64) (bool, error) {
	if err := checkKind(kind); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, userID, kind, itemID)
}

// List returns the user's favorites, optionally narrowed to one kind.
func (s *Service) List(ctx context.Context, userID int64, kind catalog.Kind, limit, offset int) ([]Favorite, int64, error) {
	if kind != "" {
		if err := checkKind(kind); err != nil {
			return nil, 0, err
		}
	}
	return s.repo.ListByUser(ctx, userID, kind, limit, offset)
}

func checkKind(kind catalog.Kind) error {
	if !slices.Contains(catalog.Kinds, kind) {
		return ErrUnknownKind
	}
	return nil
}
