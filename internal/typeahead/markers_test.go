package typeahead

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkPrefixOnlyMatchesAtTheStart(t *testing.T) {
	assert.Equal(t, "banana", MarkPrefix("an", "banana", nil), "mid-word matches stay unmarked")
	assert.Equal(t, "apple", MarkPrefix("", "apple", nil))

	marked := MarkPrefix("ap", "apple", nil)
	assert.True(t, strings.HasSuffix(marked, "ple"))
	assert.Contains(t, marked, "ap")
}

func TestMarkPrefixIsCaseInsensitive(t *testing.T) {
	marked := MarkPrefix("lo", "London", nil)
	assert.True(t, strings.HasSuffix(marked, "ndon"))
	assert.Contains(t, marked, "Lo")
}

func TestMarkAnywhereMatchesInsideTheLabel(t *testing.T) {
	assert.Equal(t, "apple", MarkAnywhere("xy", "apple", nil), "no match leaves the label alone")

	marked := MarkAnywhere("an", "banana", nil)
	assert.True(t, strings.HasPrefix(marked, "b"))
	assert.Contains(t, marked, "an")
	assert.True(t, strings.HasSuffix(marked, "ana"))
}

func TestMarkStrategiesSurviveByteLengthChangingCaseFolds(t *testing.T) {
	// "Ⱥ" (2 bytes) lowercases to "ⱥ" (3 bytes); span math on a folded
	// copy would overrun the original label here
	marked := MarkAnywhere("x", "Ⱥx", nil)
	assert.True(t, strings.HasPrefix(marked, "Ⱥ"))
	assert.Contains(t, marked, "x")

	marked = MarkPrefix("ⱥ", "Ⱥ", nil)
	assert.Contains(t, marked, "Ⱥ")

	// the query can be longer in bytes than the label without panicking
	assert.Equal(t, "Ⱥ", MarkAnywhere("ⱥⱥ", "Ⱥ", nil))
	assert.Equal(t, "Ⱥ", MarkPrefix("ⱥⱥ", "Ⱥ", nil))
}

func TestMarkAnywhereMatchesMultibyteRunes(t *testing.T) {
	marked := MarkAnywhere("ü", "Zürich", nil)
	assert.True(t, strings.HasPrefix(marked, "Z"))
	assert.True(t, strings.HasSuffix(marked, "rich"))
	assert.Contains(t, marked, "ü")
}

func TestDefaultMarkReturnsLabelUnchanged(t *testing.T) {
	assert.Equal(t, "plain", defaultMark("pl", "plain", nil))
}

func TestDefaultLabelHandlesCommonShapes(t *testing.T) {
	assert.Equal(t, "hello", defaultLabel("hello"))
	assert.Equal(t, "42", defaultLabel(42))
}
