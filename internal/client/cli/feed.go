package cli

import (
	"context"
	"fmt"

	"github.com/dkurbatovs/pulse/internal/client/api"
)

// Feed loads the global feed and renders it.
func (a *App) Feed(ctx context.Context) error {
	a.mu.Lock()
	a.profile = false
	a.profileUser = ""
	a.mu.Unlock()
	return a.reload(ctx)
}

// Profile loads a user-scoped feed. Without an argument it shows the
// logged-in user's own posts.
func (a *App) Profile(ctx context.Context, args []string) error {
	sess, ok := a.sessions.Current()
	if !ok {
		fmt.Fprintln(a.out, "log in first")
		return nil
	}

	userID := sess.User.ID
	if len(args) > 0 {
		userID = args[0]
	}

	a.mu.Lock()
	a.profile = true
	a.profileUser = userID
	a.mu.Unlock()
	return a.reload(ctx)
}

// reload re-fetches the feed for the current scope and renders it. The
// scope captured before the request decides global vs user feed.
func (a *App) reload(ctx context.Context) error {
	a.mu.Lock()
	profile, userID := a.profile, a.profileUser
	a.mu.Unlock()

	if err := a.feed.Load(ctx, profile, userID); err != nil {
		fmt.Fprintln(a.out, "could not load feed:", api.Message(err))
		return err
	}
	a.Show()
	return nil
}

// Show renders the cached feed without re-fetching.
func (a *App) Show() {
	viewerID := ""
	if sess, ok := a.sessions.Current(); ok {
		viewerID = sess.User.ID
	}
	a.renderFeed(viewerID)
}

func (a *App) renderFeed(viewerID string) {
	if a.feed.Loading() {
		fmt.Fprintln(a.out, "loading...")
		return
	}
	RenderFeed(a.out, a.cache.Posts(), viewerID, a.viewSnapshot())
}

// Like toggles the viewer's like on a post. The server decides the new
// state; the cache is updated with its authoritative copy.
func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: like <post-id>")
		return nil
	}

	post, err := a.posts.ToggleLike(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "could not update like:", api.Message(err))
		return err
	}

	viewerID := ""
	if sess, ok := a.sessions.Current(); ok {
		viewerID = sess.User.ID
	}
	state := "unliked"
	if post.IsLikedBy(viewerID) {
		state = "liked"
	}
	fmt.Fprintf(a.out, "%s: %s, %d likes\n", post.ID, state, post.LikeCount())
	return nil
}

// Comment prompts for a comment on a post. The composition buffer lives
// in the post's view state; submission is refused while it is empty and
// the buffer is cleared only after a successful response.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: comment <post-id>")
		return nil
	}
	postID := args[0]
	v := a.view(postID)

	text, err := getSimpleText(a.reader, "Add a comment...", a.out)
	if err != nil {
		return err
	}

	a.mu.Lock()
	v.Compose = text
	compose := v.Compose
	a.mu.Unlock()

	if compose == "" {
		fmt.Fprintln(a.out, "comment is empty, nothing sent")
		return nil
	}

	post, err := a.posts.AddComment(ctx, postID, compose)
	if err != nil {
		fmt.Fprintln(a.out, "could not add comment:", api.Message(err))
		return err
	}

	a.mu.Lock()
	v.Compose = ""
	a.mu.Unlock()

	fmt.Fprintf(a.out, "%s: %d comments\n", post.ID, post.CommentCount())
	return nil
}

// ToggleComments flips a post's comment panel; purely client-side.
func (a *App) ToggleComments(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: comments <post-id>")
		return nil
	}
	v := a.view(args[0])

	a.mu.Lock()
	v.ShowComments = !v.ShowComments
	a.mu.Unlock()

	a.Show()
	return nil
}
