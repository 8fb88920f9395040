package services

import "github.com/dmitrijs2005/foorum/internal/client/models"

const loremTail = " Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat."

// DemoPosts returns the posts written into an empty store. Their authors
// (3, 4, 5) are not in the default directory, so Timeline skips them.
func DemoPosts() []models.Post {
	return []models.Post{
		{
			ID:        "1",
			UserID:    "3",
			Content:   "😊" + loremTail,
			Timestamp: "5 mins ago",
			Likes:     12,
			Comments:  3,
			Shares:    1,
			Emoji:     models.EmojiPtr(models.EmojiLaugh),
		},
		{
			ID:        "2",
			UserID:    "4",
			Content:   "👍" + loremTail,
			Timestamp: "1 mins ago",
			Likes:     8,
			Comments:  2,
			Emoji:     models.EmojiPtr(models.EmojiPeace),
		},
		{
			ID:        "3",
			UserID:    "5",
			Content:   "💀" + loremTail,
			Timestamp: "2 mins ago",
			Likes:     15,
			Comments:  5,
			Shares:    2,
			Emoji:     models.EmojiPtr(models.EmojiSkull),
		},
	}
}
