package domain

import "time"

// snippetLen is the number of leading characters of the body shown in
// list-view previews.
const snippetLen = 50

// Post is a blog entry owned by a single author.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Snippet returns the first 50 characters of the body. Truncation is
// character-based, not word-aware.
func (p *Post) Snippet() string {
	r := []rune(p.Body)
	if len(r) <= snippetLen {
		return p.Body
	}
	return string(r[:snippetLen])
}
