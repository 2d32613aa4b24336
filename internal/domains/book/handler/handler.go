package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/shared/response"
)

// =====================================================
// BOOK HANDLER
// =====================================================

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// Browse returns one page of catalog books with their ratings.
// GET /books?q=<query>&page=<n>
func (h *BookHandler) Browse(c *gin.Context) {
	query := c.Query("q")

	page := 0
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "page must be a non-negative integer")
			return
		}
		page = parsed
	}

	result, err := h.bookService.Browse(c.Request.Context(), query, page)
	if err != nil {
		statusCode, errCode := mapBookError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// mapBookError maps a book error to an HTTP status code.
func mapBookError(err error) (int, string) {
	if bookErr, ok := err.(*model.BookError); ok {
		switch bookErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest, bookErr.Code
		case model.ErrCodeCatalogUnavailable:
			return http.StatusBadGateway, bookErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
