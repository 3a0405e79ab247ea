package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fresh Table is seeded with the reference defaults, not empty.
func TestNewSeedsDefaults(t *testing.T) {
	tbl := New()

	v, ok := tbl.Get("lineWidth")
	require.True(t, ok)
	assert.Equal(t, 80, *v.Int)

	v, ok = tbl.Get("hybrid")
	require.True(t, ok)
	assert.True(t, *v.Bool)

	v, ok = tbl.Get("output")
	require.True(t, ok)
	assert.Equal(t, "classic", *v.String)
}

// Set overwrites an existing default and also introduces a brand new name.
func TestSetOverwritesAndIntroduces(t *testing.T) {
	tbl := New()

	tbl.Set("lineWidth", IntValue(120))
	v, ok := tbl.Get("lineWidth")
	require.True(t, ok)
	assert.Equal(t, 120, *v.Int)

	tbl.Set("myFlag", BoolValue(true))
	v, ok = tbl.Get("myFlag")
	require.True(t, ok)
	assert.True(t, *v.Bool)
}

// Unset removes a property entirely, reverting to "not set" rather than a
// default value.
func TestUnset(t *testing.T) {
	tbl := New()

	tbl.Unset("lineWidth")
	_, ok := tbl.Get("lineWidth")
	assert.False(t, ok)
}

// Get on an unknown name reports false, not a zero Value treated as set.
func TestGetUnknown(t *testing.T) {
	tbl := New()

	_, ok := tbl.Get("noSuchProperty")
	assert.False(t, ok)
}

// ShowAll renders every property sorted by name as "name = value".
func TestShowAll(t *testing.T) {
	tbl := &Table{values: map[string]Value{
		"b": IntValue(2),
		"a": BoolValue(true),
	}}

	lines := tbl.ShowAll()
	require.Len(t, lines, 2)
	assert.Equal(t, "a = true", lines[0])
	assert.Equal(t, "b = 2", lines[1])
}

// LoadOverlay merges a YAML document's scalar properties onto the table,
// leaving properties the overlay doesn't mention untouched.
func TestLoadOverlayMerge(t *testing.T) {
	tbl := New()

	err := tbl.LoadOverlay([]byte("lineWidth: 100\nhybrid: false\nlabel: custom\n"))
	require.NoError(t, err)

	v, ok := tbl.Get("lineWidth")
	require.True(t, ok)
	assert.Equal(t, 100, *v.Int)

	v, ok = tbl.Get("hybrid")
	require.True(t, ok)
	assert.False(t, *v.Bool)

	v, ok = tbl.Get("label")
	require.True(t, ok)
	assert.Equal(t, "custom", *v.String)

	// untouched by the overlay
	v, ok = tbl.Get("output")
	require.True(t, ok)
	assert.Equal(t, "classic", *v.String)
}

// LoadOverlay rejects a property whose YAML value isn't a bool/int/string.
func TestLoadOverlayRejectsUnsupportedType(t *testing.T) {
	tbl := New()

	err := tbl.LoadOverlay([]byte("bad:\n  - 1\n  - 2\n"))
	assert.Error(t, err)
}

// LoadOverlay rejects malformed YAML outright.
func TestLoadOverlayRejectsInvalidYAML(t *testing.T) {
	tbl := New()

	err := tbl.LoadOverlay([]byte("not: [valid\n"))
	assert.Error(t, err)
}

// Value.String formats each dynamic kind the way Sys.showAll prints it,
// including the large-int comma grouping humanize.Comma provides.
func TestValueString(t *testing.T) {
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "1,234", IntValue(1234).String())
	assert.Equal(t, "classic", StringValue("classic").String())
	assert.Equal(t, "<unset>", Value{}.String())
}
