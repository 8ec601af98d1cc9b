package models

// PostEntity is one feed post as returned by the backend. Likes is a
// set-like mapping keyed by user id; Comments is append-only and kept in
// the server's order; the client never reorders it.
type PostEntity struct {
	ID                string          `json:"_id"`
	AuthorID          string          `json:"userId"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Description       string          `json:"description"`
	Location          string          `json:"location"`
	PicturePath       string          `json:"picturePath"`
	AuthorPicturePath string          `json:"userPicturePath"`
	Likes             map[string]bool `json:"likes"`
	Comments          []string        `json:"comments"`
}

// AuthorName joins the author's first and last name for display.
func (p PostEntity) AuthorName() string {
	return p.FirstName + " " + p.LastName
}

// IsLikedBy reports whether the given user is in the post's like set.
func (p PostEntity) IsLikedBy(userID string) bool {
	return p.Likes[userID]
}

// LikeCount is the size of the like set.
func (p PostEntity) LikeCount() int {
	return len(p.Likes)
}

// CommentCount is the number of comments on the post.
func (p PostEntity) CommentCount() int {
	return len(p.Comments)
}
