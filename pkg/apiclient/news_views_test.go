package apiclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsAt(title, category string, featured bool, createdAt time.Time) News {
	return News{Title: title, Category: category, Featured: featured, CreatedAt: createdAt}
}

func TestNotices_FiltersCaseInsensitively(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []News{
		newsAt("a", "Notice", false, base),
		newsAt("b", "notice", false, base.Add(time.Hour)),
		newsAt("c", "NOTICE", false, base.Add(2*time.Hour)),
		newsAt("d", "Sports", false, base.Add(3*time.Hour)),
		newsAt("e", "", false, base.Add(4*time.Hour)),
	}

	notices := Notices(items)

	require.Len(t, notices, 3)
	for _, n := range notices {
		assert.NotEqual(t, "Sports", n.Category)
	}
}

func TestNotices_SortedNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []News{
		newsAt("oldest", "notice", false, base),
		newsAt("newest", "notice", false, base.Add(48*time.Hour)),
		newsAt("middle", "notice", false, base.Add(24*time.Hour)),
	}

	notices := Notices(items)

	require.Len(t, notices, 3)
	assert.Equal(t, "newest", notices[0].Title)
	assert.Equal(t, "middle", notices[1].Title)
	assert.Equal(t, "oldest", notices[2].Title)
}

func TestNotices_EmptyInput(t *testing.T) {
	assert.Empty(t, Notices(nil))
	assert.Empty(t, Notices([]News{newsAt("x", "Sports", false, time.Now())}))
}

func TestNotices_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []News{
		newsAt("old", "notice", false, base),
		newsAt("new", "notice", false, base.Add(time.Hour)),
	}

	Notices(items)

	assert.Equal(t, "old", items[0].Title)
	assert.Equal(t, "new", items[1].Title)
}

func TestFeaturedNews_PreservesAPIOrder(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []News{
		newsAt("first", "Sports", true, base.Add(time.Hour)),
		newsAt("skipped", "Sports", false, base),
		newsAt("second", "Notice", true, base.Add(2*time.Hour)),
	}

	featured := FeaturedNews(items)

	require.Len(t, featured, 2)
	assert.Equal(t, "first", featured[0].Title)
	assert.Equal(t, "second", featured[1].Title)
}
