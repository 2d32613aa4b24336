package model

const (
	// Rating bounds. 0 is a valid stored value meaning "no rating given".
	MinRating = 0
	MaxRating = 5

	// Display name used when a comment is created without one.
	AnonymousUserName = "Anonymous"

	// Collection holding comment documents in the document store.
	CommentsCollection = "comments"
)
