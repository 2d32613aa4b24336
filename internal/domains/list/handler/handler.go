package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/list/model"
	"bookshelf-backend/internal/domains/list/service"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/response"
)

// =====================================================
// LIST HANDLER (cart + favorites)
// =====================================================

type ListHandler struct {
	listService service.ServiceInterface
}

func NewListHandler(listService service.ServiceInterface) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

// GetCart returns the actor's cart with its total.
// GET /cart
func (h *ListHandler) GetCart(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	cart, err := h.listService.Cart(c.Request.Context(), actor.ID)
	if err != nil {
		statusCode, errCode := mapListError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// AddToCart adds a book to the actor's cart.
// POST /cart
func (h *ListHandler) AddToCart(c *gin.Context) {
	h.add(c, h.listService.AddToCart)
}

// RemoveFromCart removes one book, or clears the cart when no bookId is
// given.
// DELETE /cart?bookId=<id>
func (h *ListHandler) RemoveFromCart(c *gin.Context) {
	h.remove(c, h.listService.RemoveFromCart, h.listService.ClearCart)
}

// GetFavorites returns the actor's favorites.
// GET /favorites
func (h *ListHandler) GetFavorites(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	favorites, err := h.listService.Favorites(c.Request.Context(), actor.ID)
	if err != nil {
		statusCode, errCode := mapListError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, favorites)
}

// AddToFavorites adds a book to the actor's favorites.
// POST /favorites
func (h *ListHandler) AddToFavorites(c *gin.Context) {
	h.add(c, h.listService.AddToFavorites)
}

// RemoveFromFavorites removes one book, or clears the favorites when no
// bookId is given.
// DELETE /favorites?bookId=<id>
func (h *ListHandler) RemoveFromFavorites(c *gin.Context) {
	h.remove(c, h.listService.RemoveFromFavorites, h.listService.ClearFavorites)
}

func (h *ListHandler) add(c *gin.Context, addFn func(ctx context.Context, userID string, req model.AddItemRequest) (*model.ListItem, error)) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := addFn(c.Request.Context(), actor.ID, req)
	if err != nil {
		statusCode, errCode := mapListError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

func (h *ListHandler) remove(c *gin.Context, removeFn func(ctx context.Context, userID, bookID string) error, clearFn func(ctx context.Context, userID string) error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	bookID := c.Query("bookId")

	var err error
	if bookID == "" {
		err = clearFn(c.Request.Context(), actor.ID)
	} else {
		err = removeFn(c.Request.Context(), actor.ID, bookID)
	}

	if err != nil {
		statusCode, errCode := mapListError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Removed successfully"})
}

// mapListError maps a list error to an HTTP status code.
func mapListError(err error) (int, string) {
	if listErr, ok := err.(*model.ListError); ok {
		switch listErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest, listErr.Code
		case model.ErrCodeStoreUnavailable:
			return http.StatusInternalServerError, listErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
