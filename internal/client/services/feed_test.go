package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/common"
)

func ids(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{
		"":              OrderLegacy,
		"legacy":        OrderLegacy,
		"Chronological": OrderChronological,
	} {
		got, err := ParseOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseOrder("random")
	require.Error(t, err)
}

func TestLoadPosts_EmptyStore(t *testing.T) {
	posts, err := newFixture(t).feed(OrderLegacy).LoadPosts(context.Background())
	require.NoError(t, err)
	require.NotNil(t, posts)
	require.Empty(t, posts)
}

func TestLoadPosts_LegacyOrderIsStringDescending(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	feed := f.feed(OrderLegacy)

	require.NoError(t, feed.SavePosts(ctx, []models.Post{
		{ID: "1"}, {ID: "10"}, {ID: "9"}, {ID: "2"},
	}))

	posts, err := feed.LoadPosts(ctx)
	require.NoError(t, err)
	// "9" > "2" > "10" > "1" as strings.
	assert.Equal(t, []string{"9", "2", "10", "1"}, ids(posts))
}

func TestLoadPosts_LegacyOrderIsStableForEqualIDs(t *testing.T) {
	ctx := context.Background()
	feed := newFixture(t).feed(OrderLegacy)

	require.NoError(t, feed.SavePosts(ctx, []models.Post{
		{ID: "5", Content: "a"}, {ID: "7"}, {ID: "5", Content: "b"},
	}))

	posts, err := feed.LoadPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"7", "5", "5"}, ids(posts))
	assert.Equal(t, "a", posts[1].Content)
	assert.Equal(t, "b", posts[2].Content)
}

func TestLoadPosts_ChronologicalOrder(t *testing.T) {
	ctx := context.Background()
	feed := newFixture(t).feed(OrderChronological)

	require.NoError(t, feed.SavePosts(ctx, []models.Post{
		{ID: "x-legacy"},
		{ID: "1700000000000aaaaaaaaa"},
		{ID: "3"},
		{ID: "1700000000500zzzzzzzzz"},
		{ID: "a-legacy"},
	}))

	posts, err := feed.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1700000000500zzzzzzzzz",
		"1700000000000aaaaaaaaa",
		"3",
		"x-legacy",
		"a-legacy",
	}, ids(posts))
}

func TestSavePosts_RoundTrip(t *testing.T) {
	ctx := context.Background()
	feed := newFixture(t).feed(OrderLegacy)
	require.NoError(t, feed.SavePosts(ctx, DemoPosts()))

	first, err := feed.LoadPosts(ctx)
	require.NoError(t, err)
	require.NoError(t, feed.SavePosts(ctx, first))
	second, err := feed.LoadPosts(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("round trip changed posts (-first +second):\n%s", diff)
	}
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	feed := f.feed(OrderLegacy)
	feed.now = func() time.Time { return time.UnixMilli(1700000000123) }

	p, err := feed.CreatePost(ctx, models.NewPostInput{
		Content:  "  hello forum  ",
		AuthorID: "1",
		Emoji:    models.EmojiSad,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.ID, "1700000000123"))
	assert.Len(t, p.ID, 22)
	assert.Equal(t, "1", p.UserID)
	assert.Equal(t, "hello forum", p.Content)
	assert.Equal(t, NewPostLabel, p.Timestamp)
	assert.Zero(t, p.Likes)
	assert.Zero(t, p.Comments)
	assert.Zero(t, p.Shares)
	require.NotNil(t, p.Emoji)
	assert.Equal(t, models.EmojiSad, *p.Emoji)

	stored, err := f.store.GetPosts(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, p, stored[0])
	assert.Equal(t, 1.0, f.counter(t, "foorum_posts_created_total", ""))
}

func TestCreatePost_PrependsToStoredCollection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	feed := f.feed(OrderLegacy)
	require.NoError(t, feed.SavePosts(ctx, DemoPosts()))

	p, err := feed.CreatePost(ctx, models.NewPostInput{Content: "new", AuthorID: "2"})
	require.NoError(t, err)
	assert.Nil(t, p.Emoji)

	stored, err := f.store.GetPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID, "1", "2", "3"}, ids(stored))

	// Legacy order compares ids as strings, so "3" and "2" outrank a
	// millisecond id starting with "1".
	loaded, err := feed.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", p.ID, "1"}, ids(loaded))

	chrono, err := f.feed(OrderChronological).LoadPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, chrono[0].ID)
}

func TestCreatePost_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	feed := f.feed(OrderLegacy)

	for _, in := range []models.NewPostInput{
		{Content: "", AuthorID: "1"},
		{Content: "   \n", AuthorID: "1"},
		{Content: "x", AuthorID: ""},
		{Content: "x", AuthorID: "1", Emoji: "heart"},
	} {
		_, err := feed.CreatePost(ctx, in)
		require.ErrorIs(t, err, common.ErrValidation)
	}

	stored, err := f.store.GetPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Zero(t, f.counter(t, "foorum_posts_created_total", ""))
}

func TestTimeline_DropsUnknownAuthors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	feed := f.feed(OrderLegacy)

	require.NoError(t, feed.SavePosts(ctx, append(DemoPosts(),
		models.Post{ID: "5", UserID: "1", Content: "mine"},
		models.Post{ID: "4", UserID: "2", Content: "theirs"},
	)))

	items, err := feed.Timeline(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "5", items[0].Post.ID)
	assert.Equal(t, "Demo User", items[0].Author.Name)
	assert.Equal(t, "4", items[1].Post.ID)
	assert.Equal(t, "Test User", items[1].Author.Name)
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	feed := f.feed(OrderLegacy)

	seeded, err := feed.SeedIfEmpty(ctx, DemoPosts())
	require.NoError(t, err)
	assert.True(t, seeded)

	posts, err := feed.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, ids(posts))

	items, err := feed.Timeline(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "demo authors are not in the directory")

	seeded, err = feed.SeedIfEmpty(ctx, DemoPosts())
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestSeedIfEmpty_RespectsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	feed := newFixture(t).feed(OrderLegacy)
	require.NoError(t, feed.SavePosts(ctx, []models.Post{}))

	seeded, err := feed.SeedIfEmpty(ctx, DemoPosts())
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestDemoPosts_MatchSeedData(t *testing.T) {
	posts := DemoPosts()
	require.Len(t, posts, 3)
	assert.Equal(t, "3", posts[0].UserID)
	assert.Equal(t, 12, posts[0].Likes)
	require.NotNil(t, posts[2].Emoji)
	assert.Equal(t, models.EmojiSkull, *posts[2].Emoji)
}
