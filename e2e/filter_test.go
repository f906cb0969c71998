//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFilterRerunsSearch(t *testing.T) {
	t.Parallel()
	fp := newFakeProvider(t)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", fp.URL, "--query", "jazz", "--location", "NYC"))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("2 Amazing Events Found", 5*time.Second))

	require.NoError(t, tf.OpenFilters())
	require.True(t, tf.SeePlain("Music & Concerts"))

	// First row is the music category
	require.NoError(t, tf.Select())
	require.NoError(t, tf.Escape())

	ok := tf.WaitFor(func(string) bool { return fp.RequestCount() >= 2 }, 5*time.Second)
	if !ok {
		tf.DumpTailOnFail(t, "category_filter", 4096)
		t.Fatal("toggling a category should re-run the search")
	}

	reqs := fp.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, "jazz", last.Query)
	assert.Equal(t, []string{"music"}, last.Filters.Categories)
	assert.True(t, tf.SeePlain("Filters: Music & Concerts"))
}

func TestFiltersBeforeSearchDoNotDispatch(t *testing.T) {
	t.Parallel()
	fp := newFakeProvider(t)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", fp.URL))
	require.True(t, tf.Ready())

	// ctrl+f opens the panel from the form
	require.NoError(t, tf.SendKeys("\x06"))
	require.True(t, tf.SeePlain("Music & Concerts"))
	require.NoError(t, tf.Select())
	require.NoError(t, tf.Escape())

	time.Sleep(800 * time.Millisecond)
	assert.Equal(t, 0, fp.RequestCount(), "no search has run yet")
}
