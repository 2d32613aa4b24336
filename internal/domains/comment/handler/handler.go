package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/internal/domains/comment/service"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/response"
)

// =====================================================
// COMMENT HANDLER
// =====================================================

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// GetRatings handles both rating fetch shapes.
// GET /ratings?bookId=<id>           -> { rating: BookRating }
// GET /ratings?bookIds=<id>,<id>,... -> { ratings: { id: BookRating } }
func (h *CommentHandler) GetRatings(c *gin.Context) {
	bookID := c.Query("bookId")
	bookIDs := c.Query("bookIds")

	switch {
	case bookIDs != "":
		ids := splitIDs(bookIDs)
		if len(ids) == 0 {
			response.BadRequest(c, "bookIds must contain at least one book ID")
			return
		}
		ratings := h.commentService.RatingsFor(c.Request.Context(), ids)
		response.Success(c, http.StatusOK, model.RatingsResponse{Ratings: ratings})

	case bookID != "":
		rating := h.commentService.RatingFor(c.Request.Context(), bookID)
		response.Success(c, http.StatusOK, model.RatingResponse{Rating: rating})

	default:
		response.BadRequest(c, "bookId or bookIds is required")
	}
}

// ListComments lists a book's comments, newest first.
// GET /comments?bookId=<id>
func (h *CommentHandler) ListComments(c *gin.Context) {
	bookID := c.Query("bookId")
	if bookID == "" {
		response.BadRequest(c, "bookId is required")
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), bookID)
	if err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, model.CommentsResponse{Comments: comments})
}

// CreateComment creates a new comment for the authenticated actor.
// POST /comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// The body carries userId per the wire contract, but it must be
	// the actor's own id.
	if req.UserID != "" && req.UserID != actor.ID {
		response.Forbidden(c, "userId does not match the authenticated user")
		return
	}
	req.UserID = actor.ID
	if req.UserName == "" {
		req.UserName = actor.Name
	}
	if req.UserEmail == "" {
		req.UserEmail = actor.Email
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

// UpdateComment edits the actor's own comment.
// PUT /comments?commentId=<id>
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	commentID := c.Query("commentId")
	if commentID == "" {
		response.BadRequest(c, "commentId is required")
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), actor.ID, commentID, req); err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

// DeleteComment removes the actor's own comment.
// DELETE /comments?commentId=<id>
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	commentID := c.Query("commentId")
	if commentID == "" {
		response.BadRequest(c, "commentId is required")
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), actor.ID, commentID); err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// splitIDs parses a comma-separated id list, dropping empty entries.
func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// mapCommentError maps a comment error to an HTTP status code.
func mapCommentError(err error) (int, string) {
	if commentErr, ok := err.(*model.CommentError); ok {
		switch commentErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest, commentErr.Code
		case model.ErrCodeCommentNotFound:
			return http.StatusNotFound, commentErr.Code
		case model.ErrCodeNotOwner:
			return http.StatusForbidden, commentErr.Code
		case model.ErrCodeStoreUnavailable:
			return http.StatusInternalServerError, commentErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
