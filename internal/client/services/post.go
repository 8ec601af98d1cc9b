package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/client/state"
	"github.com/dkurbatovs/pulse/internal/common"
	"github.com/dkurbatovs/pulse/internal/logging"
)

// ErrEmptyComment rejects comment submission before any request is made;
// the invoking control disables submission while the buffer is empty.
var ErrEmptyComment = errors.New("comment must not be empty")

// PostService mutates a single post through the backend and replaces that
// post's cache entry with the server's authoritative copy. The client
// never predicts the new state locally; toggle semantics live server-side.
//
// Known race, inherited by design: two mutations against the same post in
// quick succession leave the cache with whichever response arrived last,
// which may not match invocation order.
type PostService struct {
	client   api.Client
	sessions *state.SessionStore
	cache    *state.FeedCache
	log      logging.Logger
}

func NewPostService(client api.Client, sessions *state.SessionStore, cache *state.FeedCache, log logging.Logger) *PostService {
	return &PostService{client: client, sessions: sessions, cache: cache, log: log}
}

// ToggleLike sends the acting user's id to the like endpoint and installs
// the returned entity. A response for a post no longer in the cache (the
// feed moved on in the meantime) is dropped.
func (s *PostService) ToggleLike(ctx context.Context, postID string) (models.PostEntity, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return models.PostEntity{}, common.ErrNoSession
	}

	log := s.log.With("request_id", uuid.NewString(), "post", postID)

	post, err := s.client.ToggleLike(ctx, sess.Token, postID, sess.User.ID)
	if err != nil {
		log.Warn(ctx, "like toggle failed", "error", err)
		return models.PostEntity{}, err
	}

	if !s.cache.ReplaceOne(post) {
		log.Debug(ctx, "mutated post no longer cached, response dropped")
	}
	return post, nil
}

// AddComment appends commentText to the post and installs the returned
// entity, whose comments sequence now includes the new entry.
func (s *PostService) AddComment(ctx context.Context, postID, commentText string) (models.PostEntity, error) {
	if commentText == "" {
		return models.PostEntity{}, ErrEmptyComment
	}

	sess, ok := s.sessions.Current()
	if !ok {
		return models.PostEntity{}, common.ErrNoSession
	}

	log := s.log.With("request_id", uuid.NewString(), "post", postID)

	post, err := s.client.AddComment(ctx, sess.Token, postID, commentText)
	if err != nil {
		log.Warn(ctx, "comment failed", "error", err)
		return models.PostEntity{}, err
	}

	if !s.cache.ReplaceOne(post) {
		log.Debug(ctx, "mutated post no longer cached, response dropped")
	}
	return post, nil
}
