package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/foorum/internal/client/models"
)

// Feed renders the timeline, newest first.
func (a *App) Feed(ctx context.Context) error {
	items, err := a.feed.Timeline(ctx)
	if err != nil {
		a.log.Error(ctx, "load feed failed", "error", err)
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No posts yet")
		if a.isLoggedIn() {
			fmt.Fprintln(a.out, "Be the first to share something!")
		} else {
			fmt.Fprintln(a.out, "Login to see and create posts")
		}
		return nil
	}

	for i, it := range items {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		renderPost(a.out, it)
	}
	return nil
}

func renderPost(w io.Writer, it models.FeedItem) {
	p := it.Post
	header := fmt.Sprintf("%s · %s", it.Author.Name, p.Timestamp)
	if p.Emoji != nil && p.Emoji.Valid() {
		header += fmt.Sprintf("  %s %s", p.Emoji.Symbol(), *p.Emoji)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, indent(p.Content))
	fmt.Fprintf(w, "  ♥ %d  💬 %d  ↗ %d\n", p.Likes, p.Comments, p.Shares)
}
