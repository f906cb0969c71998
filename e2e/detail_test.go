//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpenAndCloseDetail(t *testing.T) {
	t.Parallel()
	fp := newFakeProvider(t)
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--endpoint", fp.URL, "--query", "jazz", "--location", "NYC"))
	require.True(t, tf.Ready())
	require.True(t, tf.OutputContainsPlain("2 Amazing Events Found", 5*time.Second))

	require.NoError(t, tf.Enter())
	if !tf.SeePlain("Saturday, October 17, 2026") {
		tf.DumpTailOnFail(t, "open_detail", 4096)
		t.Fatal("detail popup should show the long date")
	}
	require.True(t, tf.SeePlain("Live jazz all night"), "description is shown without markup")

	require.NoError(t, tf.Escape())
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Sunday, October 18, 2026"), "second card opens its own detail")

	require.NoError(t, tf.SendKeys("o"))
	require.True(t, tf.WaitForStatusMessage("This event has no link", 3*time.Second))
}
