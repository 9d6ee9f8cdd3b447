package apiclient

import (
	"sort"
	"strings"
)

// Notices selects the entries whose category is "notice", case-insensitively,
// sorted newest first. This is the announcement-overlay view; the raw list
// order from the API carries no guarantee.
func Notices(items []News) []News {
	notices := make([]News, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Category, "notice") {
			notices = append(notices, item)
		}
	}

	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].CreatedAt.After(notices[j].CreatedAt)
	})

	return notices
}

// FeaturedNews selects the entries flagged for prominent display, in the
// order the API returned them.
func FeaturedNews(items []News) []News {
	featured := make([]News, 0, len(items))
	for _, item := range items {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured
}
