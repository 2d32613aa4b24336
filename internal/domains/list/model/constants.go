package model

// Collections
const (
	CartCollection      = "cart"
	FavoritesCollection = "favorites"
)
