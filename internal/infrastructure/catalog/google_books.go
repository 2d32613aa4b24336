package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultQuery is the search used when the caller supplies none.
const DefaultQuery = "programming"

// Client talks to the Google Books volumes API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(baseURL string, pageSize, rps, maxRetries int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:    baseURL,
		pageSize:   pageSize,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// volumesResponse matches the volumes endpoint payload, trimmed to the
// fields the service uses.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Description   string   `json:"description"`
			PublishedDate string   `json:"publishedDate"`
			PageCount     int      `json:"pageCount"`
			Categories    []string `json:"categories"`
			ImageLinks    struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Book is the summary shape the rest of the service works with.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	Thumbnail     string   `json:"thumbnail"`
}

// SearchPage is one page of search results.
type SearchPage struct {
	TotalItems int    `json:"totalItems"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Books      []Book `json:"books"`
}

// Search runs a volumes query. page is zero-based; an empty query falls
// back to DefaultQuery.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	if query == "" {
		query = DefaultQuery
	}
	if page < 0 {
		page = 0
	}

	u := fmt.Sprintf("%s/volumes?q=%s&startIndex=%d&maxResults=%d",
		c.baseURL, url.QueryEscape(query), page*c.pageSize, c.pageSize)

	var res volumesResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}

	books := make([]Book, 0, len(res.Items))
	for _, item := range res.Items {
		books = append(books, Book{
			ID:            item.ID,
			Title:         item.VolumeInfo.Title,
			Authors:       item.VolumeInfo.Authors,
			Description:   item.VolumeInfo.Description,
			PublishedDate: item.VolumeInfo.PublishedDate,
			PageCount:     item.VolumeInfo.PageCount,
			Categories:    item.VolumeInfo.Categories,
			Thumbnail:     item.VolumeInfo.ImageLinks.Thumbnail,
		})
	}

	return &SearchPage{
		TotalItems: res.TotalItems,
		Page:       page,
		PageSize:   c.pageSize,
		Books:      books,
	}, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
