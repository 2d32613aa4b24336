package model

// ListItem is one saved book in a user's cart or favorites list.
type ListItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	BookID    string `json:"bookId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	CreatedAt string `json:"createdAt"`
}
