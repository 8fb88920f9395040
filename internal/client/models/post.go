package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/foorum/internal/common"
)

// Emoji is the reaction attached to a post.
type Emoji string

const (
	EmojiSkull Emoji = "skull"
	EmojiLaugh Emoji = "laugh"
	EmojiSad   Emoji = "sad"
	EmojiPeace Emoji = "peace"
)

// Valid reports whether e is one of the known reactions.
func (e Emoji) Valid() bool {
	switch e {
	case EmojiSkull, EmojiLaugh, EmojiSad, EmojiPeace:
		return true
	}
	return false
}

// Symbol returns the glyph shown next to a post.
func (e Emoji) Symbol() string {
	switch e {
	case EmojiSkull:
		return "💀"
	case EmojiLaugh:
		return "😂"
	case EmojiSad:
		return "😢"
	case EmojiPeace:
		return "✌️"
	}
	return ""
}

// Post is a feed item. Timestamp is a display label ("5 mins ago"), not a
// date; ordering is derived from ID.
type Post struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Shares    int    `json:"shares"`
	Emoji     *Emoji `json:"emoji,omitempty"`
}

// FeedItem is a post whose author was found in the directory.
type FeedItem struct {
	Post   Post
	Author User
}

const (
	millisDigits    = 13
	postIDSuffixLen = 9
)

// NewPostID returns the decimal unix milliseconds of now followed by nine
// random base36 characters. Unique in practice, not cryptographically.
func NewPostID(now time.Time) (string, error) {
	suffix, err := common.MakeRandBase36String(postIDSuffixLen)
	if err != nil {
		return "", fmt.Errorf("post id suffix: %w", err)
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + suffix, nil
}

// CreatedAtMillis extracts the millisecond prefix written by NewPostID.
// Fully numeric ids shorter than a millisecond timestamp (the demo posts)
// are returned as-is.
func (p Post) CreatedAtMillis() (int64, bool) {
	prefix := p.ID
	if len(prefix) > millisDigits {
		prefix = prefix[:millisDigits]
	}
	v, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// EmojiPtr is a helper for building posts with a reaction.
func EmojiPtr(e Emoji) *Emoji {
	return &e
}
