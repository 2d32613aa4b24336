package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/comment/model"
	"bookshelf-backend/internal/shared/middleware"
)

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) RatingFor(ctx context.Context, bookID string) model.BookRating {
	args := m.Called(ctx, bookID)
	return args.Get(0).(model.BookRating)
}

func (m *mockCommentService) RatingsFor(ctx context.Context, bookIDs []string) map[string]model.BookRating {
	args := m.Called(ctx, bookIDs)
	return args.Get(0).(map[string]model.BookRating)
}

func (m *mockCommentService) ListComments(ctx context.Context, bookID string) ([]*model.Comment, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentService) CreateComment(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, actorID, commentID string, req model.UpdateCommentRequest) error {
	args := m.Called(ctx, actorID, commentID, req)
	return args.Error(0)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	args := m.Called(ctx, actorID, commentID)
	return args.Error(0)
}

// asActor injects an authenticated actor the way the auth middleware
// would.
func asActor(actor middleware.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func newRouter(svc *mockCommentService, actor *middleware.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewCommentHandler(svc)
	router.GET("/ratings", h.GetRatings)
	router.GET("/comments", h.ListComments)

	writes := router.Group("")
	if actor != nil {
		writes.Use(asActor(*actor))
	}
	writes.POST("/comments", h.CreateComment)
	writes.PUT("/comments", h.UpdateComment)
	writes.DELETE("/comments", h.DeleteComment)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var testActor = middleware.Actor{ID: "user-1", Name: "Ada", Email: "ada@example.com"}

func TestGetRatings(t *testing.T) {
	t.Run("single book", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("RatingFor", mock.Anything, "b1").
			Return(model.BookRating{AverageRating: 4.5, TotalRatings: 9, RatingsCount: 2})
		router := newRouter(svc, nil)

		w := doJSON(t, router, http.MethodGet, "/ratings?bookId=b1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"data": {"rating": {"averageRating": 4.5, "totalRatings": 9, "ratingsCount": 2}}
		}`, w.Body.String())
	})

	t.Run("batch", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("RatingsFor", mock.Anything, []string{"b1", "b2"}).
			Return(map[string]model.BookRating{"b1": {AverageRating: 5, TotalRatings: 5, RatingsCount: 1}, "b2": {}})
		router := newRouter(svc, nil)

		w := doJSON(t, router, http.MethodGet, "/ratings?bookIds=b1,%20b2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing params", func(t *testing.T) {
		router := newRouter(new(mockCommentService), nil)

		w := doJSON(t, router, http.MethodGet, "/ratings", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListCommentsHandler(t *testing.T) {
	t.Run("requires bookId", func(t *testing.T) {
		router := newRouter(new(mockCommentService), nil)

		w := doJSON(t, router, http.MethodGet, "/comments", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns the book's comments", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("ListComments", mock.Anything, "b1").Return([]*model.Comment{
			{ID: "c1", BookID: "b1", UserID: "user-1", Comment: "text"},
		}, nil)
		router := newRouter(svc, nil)

		w := doJSON(t, router, http.MethodGet, "/comments?bookId=b1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"comments"`)
	})
}

func TestCreateCommentHandler(t *testing.T) {
	body := map[string]any{"bookId": "b1", "comment": "nice", "rating": 5}

	t.Run("requires authentication", func(t *testing.T) {
		router := newRouter(new(mockCommentService), nil)

		w := doJSON(t, router, http.MethodPost, "/comments", body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a body userId that is not the actor", func(t *testing.T) {
		router := newRouter(new(mockCommentService), &testActor)

		w := doJSON(t, router, http.MethodPost, "/comments", map[string]any{
			"bookId": "b1", "comment": "nice", "userId": "someone-else",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("fills identity from the actor and creates", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("CreateComment", mock.Anything, model.CreateCommentRequest{
			BookID:    "b1",
			UserID:    "user-1",
			UserName:  "Ada",
			UserEmail: "ada@example.com",
			Comment:   "nice",
			Rating:    5,
		}).Return(&model.Comment{ID: "c1", BookID: "b1"}, nil)
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodPost, "/comments", body)

		require.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("maps validation failures to 400", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("CreateComment", mock.Anything, mock.Anything).
			Return(nil, model.NewValidationError("rating must not exceed 5"))
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodPost, "/comments", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateCommentHandler(t *testing.T) {
	body := map[string]any{"comment": "edited", "rating": 3}

	t.Run("requires commentId", func(t *testing.T) {
		router := newRouter(new(mockCommentService), &testActor)

		w := doJSON(t, router, http.MethodPut, "/comments", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps ownership rejection to 403", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("UpdateComment", mock.Anything, "user-1", "c1", mock.Anything).
			Return(model.NewNotOwnerError())
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodPut, "/comments?commentId=c1", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("maps missing comment to 404", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("UpdateComment", mock.Anything, "user-1", "c1", mock.Anything).
			Return(model.NewCommentNotFoundError())
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodPut, "/comments?commentId=c1", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("updates the actor's comment", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("UpdateComment", mock.Anything, "user-1", "c1",
			model.UpdateCommentRequest{Comment: "edited", Rating: 3}).Return(nil)
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodPut, "/comments?commentId=c1", body)

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		router := newRouter(new(mockCommentService), nil)

		w := doJSON(t, router, http.MethodDelete, "/comments?commentId=c1", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("maps store failures to 500", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("DeleteComment", mock.Anything, "user-1", "c1").
			Return(model.NewStoreUnavailableError(assert.AnError))
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodDelete, "/comments?commentId=c1", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("deletes the actor's comment", func(t *testing.T) {
		svc := new(mockCommentService)
		svc.On("DeleteComment", mock.Anything, "user-1", "c1").Return(nil)
		router := newRouter(svc, &testActor)

		w := doJSON(t, router, http.MethodDelete, "/comments?commentId=c1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}
