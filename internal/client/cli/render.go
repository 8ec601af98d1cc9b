package cli

import (
	"fmt"
	"io"

	"github.com/dkurbatovs/pulse/internal/client/models"
)

// RenderFeed writes the plain-text rendering of the feed. Like state and
// counts are derived from each entity on every render, never cached.
// views carries the per-post panel/composition state; a missing entry
// means the default (panel closed).
func RenderFeed(w io.Writer, posts []models.PostEntity, viewerID string, views map[string]postView) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet.")
		return
	}

	for _, p := range posts {
		fmt.Fprintf(w, "[%s] %s (%s)\n", p.ID, p.AuthorName(), p.Location)
		if p.Description != "" {
			fmt.Fprintf(w, "    %s\n", p.Description)
		}
		if p.PicturePath != "" {
			fmt.Fprintf(w, "    (photo: %s)\n", p.PicturePath)
		}

		liked := ""
		if p.IsLikedBy(viewerID) {
			liked = " you like this"
		}
		fmt.Fprintf(w, "    likes: %d%s | comments: %d\n", p.LikeCount(), liked, p.CommentCount())

		if views[p.ID].ShowComments {
			for _, c := range p.Comments {
				fmt.Fprintf(w, "      - %s\n", c)
			}
		}
		fmt.Fprintln(w)
	}
}
