package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []string
	data   [][]interface{}
}

func (r *recordingSink) Emit(name string, data ...interface{}) {
	r.events = append(r.events, name)
	r.data = append(r.data, data)
}

type recordingWindow struct {
	raised int
}

func (r *recordingWindow) Raise() { r.raised++ }

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("finds_first_matching_argument", func(t *testing.T) {
		t.Parallel()

		uri, ok := Match([]string{"--minimized", "aio://open/123", "aio://open/456"})

		require.True(t, ok)
		assert.Equal(t, "aio://open/123", uri)
	})

	t.Run("no_match_in_plain_arguments", func(t *testing.T) {
		t.Parallel()

		_, ok := Match([]string{"--minimized", "-v", "http://example.com"})

		assert.False(t, ok)
	})

	t.Run("prefix_must_be_at_start", func(t *testing.T) {
		t.Parallel()

		_, ok := Match([]string{"open aio://open/123"})

		assert.False(t, ok)
	})

	t.Run("empty_args", func(t *testing.T) {
		t.Parallel()

		_, ok := Match(nil)

		assert.False(t, ok)
	})
}

func TestGuardHandleStartup(t *testing.T) {
	t.Parallel()

	t.Run("emits_exactly_one_event_with_raw_uri", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{}
		window := &recordingWindow{}
		g := NewGuard(sink, window)

		g.HandleStartup([]string{"aio://open/123"})

		require.Len(t, sink.events, 1)
		assert.Equal(t, EventDetected, sink.events[0])
		require.Len(t, sink.data[0], 1)
		assert.Equal(t, "aio://open/123", sink.data[0][0])
		assert.Zero(t, window.raised, "startup path must not touch focus")
	})

	t.Run("no_event_without_deep_link", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{}
		g := NewGuard(sink, &recordingWindow{})

		g.HandleStartup([]string{"--autostart"})

		assert.Empty(t, sink.events)
	})

	t.Run("nil_sink_drops_silently", func(t *testing.T) {
		t.Parallel()

		g := NewGuard(nil, nil)

		assert.NotPanics(t, func() {
			g.HandleStartup([]string{"aio://open/123"})
		})
	})
}

func TestGuardHandleSecondInstance(t *testing.T) {
	t.Parallel()

	t.Run("emits_once_and_raises_once", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{}
		window := &recordingWindow{}
		g := NewGuard(sink, window)

		g.HandleSecondInstance([]string{"C:\\aio\\aio.exe", "aio://auth-callback?token=abc"})

		require.Len(t, sink.events, 1)
		assert.Equal(t, "aio://auth-callback?token=abc", sink.data[0][0])
		assert.Equal(t, 1, window.raised)
	})

	t.Run("no_match_means_no_event_and_no_focus", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{}
		window := &recordingWindow{}
		g := NewGuard(sink, window)

		g.HandleSecondInstance([]string{"C:\\aio\\aio.exe", "--minimized"})

		assert.Empty(t, sink.events)
		assert.Zero(t, window.raised)
	})

	t.Run("nil_window_still_emits", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{}
		g := NewGuard(sink, nil)

		assert.NotPanics(t, func() {
			g.HandleSecondInstance([]string{"aio://open/9"})
		})
		assert.Len(t, sink.events, 1)
	})
}
