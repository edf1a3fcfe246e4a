package typeahead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitSetsValueHidesListAndNotifiesOnce(t *testing.T) {
	var selects int
	var selectedRaw any
	in, field := bindWithItems(t, Config{
		OnSelect: func(raw any, item *Suggestion) {
			selects++
			selectedRaw = raw
		},
	})

	items := in.Items()
	in.Commit(items[1])

	assert.Equal(t, "b", field.Value())
	assert.False(t, in.Visible())
	assert.Equal(t, 1, selects)
	assert.Equal(t, "b", selectedRaw)
	assert.True(t, items[1].Active)
	assert.False(t, items[0].Active)
	assert.False(t, items[2].Active)
}

func TestCommitMovesActiveMark(t *testing.T) {
	in, _ := bindWithItems(t, Config{})

	items := in.Items()
	in.Commit(items[0])
	in.Commit(items[2])

	assert.False(t, items[0].Active, "at most one item may be active")
	assert.True(t, items[2].Active)
}

func TestCommitNilIsNoOp(t *testing.T) {
	var selects int
	in, field := bindWithItems(t, Config{
		OnSelect: func(raw any, item *Suggestion) { selects++ },
	})

	in.Commit(nil)

	assert.Equal(t, "ab", field.Value())
	assert.True(t, in.Visible())
	assert.Zero(t, selects)
}

func TestClearEmptiesFieldAndList(t *testing.T) {
	var cleared int
	in, field := bindWithItems(t, Config{
		OnClear: func() { cleared++ },
	})

	in.Clear()

	assert.Empty(t, field.Value())
	assert.Empty(t, in.Items())
	assert.False(t, in.Visible())
	assert.Equal(t, 1, cleared)
}

func TestFocusShowsRetainedListAndHidesEmptyOne(t *testing.T) {
	in, _ := bindWithItems(t, Config{})

	in.Commit(in.Items()[0])
	require.False(t, in.Visible())

	in.HandleFocus()
	assert.True(t, in.Visible(), "focus reshows a populated list")

	in.Clear()
	in.HandleFocus()
	assert.False(t, in.Visible(), "focus keeps an empty list hidden")
}

func TestBindRequiresSearchFunction(t *testing.T) {
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	in, err := reg.Bind(field, Config{})

	assert.ErrorIs(t, err, ErrMissingSearch)
	assert.Nil(t, in)
	assert.Zero(t, reg.Count(), "a failed bind must not register an instance")
}

func TestBindRejectsNilField(t *testing.T) {
	reg := NewRegistry(nil, nil)

	_, err := reg.Bind(nil, testConfig((&recordingSearch{}).fn))

	assert.ErrorIs(t, err, ErrNilField)
}

func TestRebindDestroysPriorInstance(t *testing.T) {
	search := &recordingSearch{}
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	first, err := reg.Bind(field, testConfig(search.fn))
	require.NoError(t, err)

	// a pending dispatch on the first instance must die with it
	typeInto(first, field, "doomed")

	second, err := reg.Bind(field, testConfig(search.fn))
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Count())
	assert.Same(t, second, reg.Lookup(field))
	assert.NotEqual(t, first.ID(), second.ID())

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, search.calls(), "the replaced instance's timer is cancelled")
}

func TestDestroyRestoresPlaceholder(t *testing.T) {
	search := &recordingSearch{}
	reg := NewRegistry(nil, nil)
	field := newFakeField()
	field.SetPlaceholder("original")

	in, err := reg.Bind(field, testConfig(search.fn))
	require.NoError(t, err)

	field.SetPlaceholder("changed while bound")
	in.Destroy()

	assert.Equal(t, "original", field.Placeholder())
}

func TestDestroyIsIdempotent(t *testing.T) {
	search := &recordingSearch{}
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	in, err := reg.Bind(field, testConfig(search.fn))
	require.NoError(t, err)

	in.Destroy()
	in.Destroy()

	assert.Zero(t, reg.Count())
}

func TestLateResolutionAfterDestroyIsIgnored(t *testing.T) {
	gates := newGatedSearch("gone")
	reg := NewRegistry(nil, nil)
	field := newFakeField()

	in, err := reg.Bind(field, testConfig(gates.fn))
	require.NoError(t, err)

	typeInto(in, field, "gone")
	require.Eventually(t, func() bool { return gates.isStarted("gone") }, time.Second, time.Millisecond)

	in.Destroy()
	gates.release("gone")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, in.Items())
	assert.False(t, in.Visible())
}
