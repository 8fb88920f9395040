package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/common"
)

// parsePostArgs splits an optional leading ":emoji" token off the post text.
func parsePostArgs(arg string) (string, models.Emoji) {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, ":") {
		return arg, ""
	}
	tok, rest, _ := strings.Cut(arg, " ")
	e := models.Emoji(strings.TrimPrefix(tok, ":"))
	if !e.Valid() {
		return arg, ""
	}
	return strings.TrimSpace(rest), e
}

// Post composes a post. Without text it prompts for one, offering the
// current draft when the answer is empty. Signed-out users get their text
// saved as a draft and the login prompt.
func (a *App) Post(ctx context.Context, arg string) error {
	content, emoji := parsePostArgs(arg)

	if content == "" {
		d := a.currentDraft()
		prompt := "What's on your mind?"
		if !d.empty() {
			prompt = fmt.Sprintf("What's on your mind? (empty keeps the draft: %q)", d.content)
		}
		text, err := getMultiline(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		content = text
		if content == "" {
			content = d.content
			if emoji == "" {
				emoji = d.emoji
			}
		}
	}

	if content == "" {
		fmt.Fprintln(a.out, "Nothing to post.")
		return nil
	}

	if !a.isLoggedIn() {
		a.setDraft(draft{content: content, emoji: emoji})
		fmt.Fprintln(a.out, "Login required to post. Your text is saved as a draft.")
		return a.Login(ctx)
	}

	return a.publish(ctx, draft{content: content, emoji: emoji})
}

// publish creates the post as the current user and redraws the feed.
// A validation failure keeps d as the draft.
func (a *App) publish(ctx context.Context, d draft) error {
	u, ok := a.sessions.CurrentUser()
	if !ok {
		a.setDraft(d)
		return common.ErrNotAuthenticated
	}

	_, err := a.feed.CreatePost(ctx, models.NewPostInput{
		Content:  d.content,
		AuthorID: u.ID,
		Emoji:    d.emoji,
	})
	if err != nil {
		a.setDraft(d)
		if errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(a.out, "Not posted:", err)
			return nil
		}
		a.log.Error(ctx, "create post failed", "error", err)
		return err
	}

	a.clearDraft()
	fmt.Fprintln(a.out, "Posted.")
	return a.Feed(ctx)
}

// offerDraft asks whether to publish a draft left from before sign-in.
func (a *App) offerDraft(ctx context.Context) error {
	d := a.currentDraft()
	if d.empty() {
		return nil
	}

	fmt.Fprintln(a.out, "You have an unfinished post:")
	fmt.Fprintln(a.out, indent(d.content))
	answer, err := getSimpleText(a.reader, "Post it now? [Y/n]", a.out)
	if err != nil {
		return nil
	}
	if !isYes(answer) {
		fmt.Fprintln(a.out, "Draft kept. Use `post` to finish it or `draft clear` to discard it.")
		return nil
	}
	return a.publish(ctx, d)
}

// Draft shows the composer draft, or discards it with "clear".
func (a *App) Draft(ctx context.Context, arg string) error {
	switch strings.TrimSpace(arg) {
	case "":
		d := a.currentDraft()
		if d.empty() {
			fmt.Fprintln(a.out, "No draft.")
			return nil
		}
		if d.emoji != "" {
			fmt.Fprintf(a.out, "Draft (%s %s):\n", d.emoji.Symbol(), d.emoji)
		} else {
			fmt.Fprintln(a.out, "Draft:")
		}
		fmt.Fprintln(a.out, indent(d.content))
	case "clear":
		a.clearDraft()
		fmt.Fprintln(a.out, "Draft discarded.")
	default:
		fmt.Fprintln(a.out, "Usage: draft [clear]")
	}
	return nil
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
