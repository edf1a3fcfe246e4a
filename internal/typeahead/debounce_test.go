package typeahead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceCoalescesRapidKeystrokes(t *testing.T) {
	search := &recordingSearch{}
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	cfg := testConfig(search.fn)
	cfg.Debounce = 60 * time.Millisecond
	in, err := reg.Bind(field, cfg)
	require.NoError(t, err)

	// three keystrokes well inside the debounce interval
	for _, v := range []string{"a", "ab", "abc"} {
		typeInto(in, field, v)
		time.Sleep(15 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return len(search.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	// no further dispatch sneaks in after the interval
	time.Sleep(2 * cfg.Debounce)
	calls := search.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "abc", calls[0], "dispatch must use the value after the last keystroke")
}

func TestDebounceFiresOncePerQuietPeriod(t *testing.T) {
	search := &recordingSearch{}
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	in, err := reg.Bind(field, testConfig(search.fn))
	require.NoError(t, err)

	typeInto(in, field, "first")
	require.Eventually(t, func() bool {
		return len(search.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	typeInto(in, field, "second")
	require.Eventually(t, func() bool {
		return len(search.calls()) == 2
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, search.calls())
}

func TestDestroyCancelsPendingTimer(t *testing.T) {
	search := &recordingSearch{}
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	cfg := testConfig(search.fn)
	cfg.Debounce = 30 * time.Millisecond
	in, err := reg.Bind(field, cfg)
	require.NoError(t, err)

	typeInto(in, field, "doomed")
	in.Destroy()

	time.Sleep(3 * cfg.Debounce)
	assert.Empty(t, search.calls(), "no dispatch may occur after teardown")
	assert.Equal(t, 0, reg.Count())
}
