package service

import (
	"context"

	"github.com/shopspring/decimal"

	"bookshelf-backend/internal/domains/list/model"
	"bookshelf-backend/internal/domains/list/repository"
)

// ServiceInterface exposes the cart and favorites operations. Both are
// keyed sets over the same store; the cart additionally carries a
// running total.
type ServiceInterface interface {
	Cart(ctx context.Context, userID string) (*model.CartResponse, error)
	AddToCart(ctx context.Context, userID string, req model.AddItemRequest) (*model.ListItem, error)
	RemoveFromCart(ctx context.Context, userID, bookID string) error
	ClearCart(ctx context.Context, userID string) error

	Favorites(ctx context.Context, userID string) (*model.ItemsResponse, error)
	AddToFavorites(ctx context.Context, userID string, req model.AddItemRequest) (*model.ListItem, error)
	RemoveFromFavorites(ctx context.Context, userID, bookID string) error
	ClearFavorites(ctx context.Context, userID string) error
}

type listService struct {
	listRepo  repository.ListRepository
	itemPrice decimal.Decimal
}

// NewListService builds the service. itemPrice is the flat per-item
// price used for the cart total until the catalog exposes real pricing.
func NewListService(listRepo repository.ListRepository, itemPrice decimal.Decimal) ServiceInterface {
	return &listService{
		listRepo:  listRepo,
		itemPrice: itemPrice,
	}
}

// =====================================================
// CART
// =====================================================

func (s *listService) Cart(ctx context.Context, userID string) (*model.CartResponse, error) {
	items, err := s.listRepo.ListByUser(ctx, model.CartCollection, userID)
	if err != nil {
		return nil, err
	}

	total := s.itemPrice.Mul(decimal.NewFromInt(int64(len(items))))
	return &model.CartResponse{
		Items: items,
		Total: total,
	}, nil
}

func (s *listService) AddToCart(ctx context.Context, userID string, req model.AddItemRequest) (*model.ListItem, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error())
	}
	return s.listRepo.Add(ctx, model.CartCollection, userID, req)
}

func (s *listService) RemoveFromCart(ctx context.Context, userID, bookID string) error {
	// Removing an absent book is a no-op, matching set semantics.
	_, err := s.listRepo.Remove(ctx, model.CartCollection, userID, bookID)
	return err
}

func (s *listService) ClearCart(ctx context.Context, userID string) error {
	return s.listRepo.Clear(ctx, model.CartCollection, userID)
}

// =====================================================
// FAVORITES
// =====================================================

func (s *listService) Favorites(ctx context.Context, userID string) (*model.ItemsResponse, error) {
	items, err := s.listRepo.ListByUser(ctx, model.FavoritesCollection, userID)
	if err != nil {
		return nil, err
	}
	return &model.ItemsResponse{Items: items}, nil
}

func (s *listService) AddToFavorites(ctx context.Context, userID string, req model.AddItemRequest) (*model.ListItem, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error())
	}
	return s.listRepo.Add(ctx, model.FavoritesCollection, userID, req)
}

func (s *listService) RemoveFromFavorites(ctx context.Context, userID, bookID string) error {
	_, err := s.listRepo.Remove(ctx, model.FavoritesCollection, userID, bookID)
	return err
}

func (s *listService) ClearFavorites(ctx context.Context, userID string) error {
	return s.listRepo.Clear(ctx, model.FavoritesCollection, userID)
}
