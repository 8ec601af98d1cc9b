package services

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dkurbatovs/pulse/internal/client/api"
	"github.com/dkurbatovs/pulse/internal/client/models"
	"github.com/dkurbatovs/pulse/internal/client/state"
	"github.com/dkurbatovs/pulse/internal/common"
	"github.com/dkurbatovs/pulse/internal/logging"
)

// FeedService loads either the global feed or a user-scoped feed and
// replaces the Feed Cache wholesale with the result.
//
// Every load bumps a generation counter; a response that comes back after
// a newer load has started is discarded rather than allowed to overwrite
// the cache with a stale scope.
type FeedService struct {
	client   api.Client
	sessions *state.SessionStore
	cache    *state.FeedCache
	log      logging.Logger

	inflight   atomic.Int32
	generation atomic.Uint64
}

func NewFeedService(client api.Client, sessions *state.SessionStore, cache *state.FeedCache, log logging.Logger) *FeedService {
	return &FeedService{client: client, sessions: sessions, cache: cache, log: log}
}

// Load fetches the feed for the given scope: the global feed, or userID's
// posts when profile is true. The scope decision belongs to the caller.
// Requires an active session.
func (s *FeedService) Load(ctx context.Context, profile bool, userID string) error {
	token, ok := s.sessions.Token()
	if !ok {
		return common.ErrNoSession
	}

	gen := s.generation.Add(1)
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	log := s.log.With("request_id", uuid.NewString(), "profile", profile)

	posts, err := func() ([]models.PostEntity, error) {
		if profile {
			return s.client.UserFeed(ctx, token, userID)
		}
		return s.client.GlobalFeed(ctx, token)
	}()
	if err != nil {
		log.Warn(ctx, "feed load failed", "error", err)
		return err
	}

	if s.generation.Load() != gen {
		log.Debug(ctx, "stale feed response discarded", "generation", gen)
		return nil
	}

	s.cache.ReplaceAll(posts)
	log.Debug(ctx, "feed replaced", "posts", len(posts))
	return nil
}

// Loading reports whether any load is in flight, from invocation until
// the replace-all completes, success or failure. The rendering layer
// suppresses the feed list while true.
func (s *FeedService) Loading() bool {
	return s.inflight.Load() > 0
}
