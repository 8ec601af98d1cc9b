package state

import (
	"sync"

	"github.com/dkurbatovs/pulse/internal/client/models"
)

// FeedCache is the single in-memory ordered collection of posts the UI
// renders from. It permits exactly two mutations: ReplaceAll discards the
// previous sequence, ReplaceOne substitutes one entity in place.
type FeedCache struct {
	mu    sync.RWMutex
	posts []models.PostEntity
}

func NewFeedCache() *FeedCache {
	return &FeedCache{}
}

// ReplaceAll discards the cached sequence and installs the given one.
// The input slice is copied, so the caller may keep using it.
func (c *FeedCache) ReplaceAll(posts []models.PostEntity) {
	next := make([]models.PostEntity, len(posts))
	copy(next, posts)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = next
}

// ReplaceOne locates the entity with the same id and substitutes it
// without reordering the sequence; all other entries are untouched.
// Returns false when no entity with that id is cached, which callers
// treat as a no-op (e.g. a response arriving after the feed was reloaded
// into a different scope).
func (c *FeedCache) ReplaceOne(post models.PostEntity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == post.ID {
			c.posts[i] = post
			return true
		}
	}
	return false
}

// Posts returns a copy of the cached sequence in display order.
func (c *FeedCache) Posts() []models.PostEntity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.PostEntity, len(c.posts))
	copy(out, c.posts)
	return out
}

// Get returns the cached entity with the given id, if present.
func (c *FeedCache) Get(id string) (models.PostEntity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.PostEntity{}, false
}

// Len reports the number of cached posts.
func (c *FeedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.posts)
}
