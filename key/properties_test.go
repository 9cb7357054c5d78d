// SPDX-License-Identifier: MIT
// Package key_test locks in the script line produced by key.Properties:
// defaults, the absorbing hidden state, fixed token order and purity.

package key_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvplot/key"
)

// fullyLoaded returns a key with every attribute set.
func fullyLoaded() *key.Properties {
	return key.New().
		SetPosition(key.Outside(key.Bottom, key.Left)).
		SetStacking(key.Horizontally).
		SetJustification(key.JustifyLeft).
		SetOrder(key.SampleThenText).
		SetTitle("Legend").
		SetBoxed(key.Yes)
}

func TestScript_Scenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    *key.Properties
		want string
	}{
		{"defaults", key.New(), "set key on \n"},
		{"hidden", key.New().Hide(), "set key off\n"},
		{"boxed and titled", key.New().SetBoxed(key.Yes).SetTitle("Legend"), "set key on title 'Legend' box \n"},
		{"inside top right stacked vertically",
			key.New().SetPosition(key.Inside(key.Top, key.Right)).SetStacking(key.Vertically),
			"set key on inside top right vertically \n"},
		{"show after hide", key.New().Hide().Show(), "set key on \n"},
		{"boxed then unboxed", key.New().SetBoxed(key.Yes).SetBoxed(key.No), "set key on \n"},
		{"outside center center", key.New().SetPosition(key.Outside(key.VCenter, key.HCenter)),
			"set key on outside center center \n"},
		{"justification only", key.New().SetJustification(key.JustifyRight), "set key on Right \n"},
		{"order only", key.New().SetOrder(key.TextThenSample), "set key on noreverse \n"},
		{"everything",
			fullyLoaded(),
			"set key on outside bottom left horizontally Left reverse title 'Legend' box \n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.p.Script())
		})
	}
}

func TestScript_HiddenIsAbsorbing(t *testing.T) {
	t.Parallel()

	p := fullyLoaded().Hide()
	assert.Equal(t, "set key off\n", p.Script(), "hidden must ignore every other field")

	// Mutating after Hide does not leak tokens either.
	p.SetTitle("Other").SetStacking(key.Vertically)
	assert.Equal(t, "set key off\n", p.Script())

	// Showing again restores the stored fields.
	p.Show()
	assert.Equal(t, "set key on outside bottom left vertically Left reverse title 'Other' box \n", p.Script())
}

func TestScript_VisibleStartsWithOn(t *testing.T) {
	t.Parallel()

	for _, p := range []*key.Properties{key.New(), fullyLoaded(), key.New().SetTitle("")} {
		s := p.Script()
		assert.True(t, strings.HasPrefix(s, "set key on "), "got %q", s)
		assert.True(t, strings.HasSuffix(s, "\n"), "got %q", s)
		assert.Equal(t, 1, strings.Count(s, "\n"), "exactly one line expected")
	}
}

func TestScript_Idempotent(t *testing.T) {
	t.Parallel()

	p := fullyLoaded()
	first := p.Script()
	assert.Equal(t, first, p.Script())
	assert.Equal(t, first, p.String())
}

func TestScript_MutationOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	a := key.New().
		SetStacking(key.Vertically).
		SetJustification(key.JustifyLeft).
		SetOrder(key.SampleThenText)
	b := key.New().
		SetOrder(key.SampleThenText).
		SetJustification(key.JustifyLeft).
		SetStacking(key.Vertically)

	assert.Equal(t, a.Script(), b.Script())
	assert.Equal(t, "set key on vertically Left reverse \n", a.Script())
}

func TestScript_LastWriteWins(t *testing.T) {
	t.Parallel()

	p := key.New().
		SetPosition(key.Inside(key.Top, key.Left)).
		SetPosition(key.Outside(key.Bottom, key.Right)).
		SetTitle("a").
		SetTitle("b")
	assert.Equal(t, "set key on outside bottom right title 'b' \n", p.Script())
}

func TestScript_TitleIsVerbatim(t *testing.T) {
	t.Parallel()

	// Quotes are not escaped.
	p := key.New().SetTitle("it's")
	assert.Equal(t, "set key on title 'it's' \n", p.Script())

	// An empty title is still a set title.
	assert.Equal(t, "set key on title '' \n", key.New().SetTitle("").Script())
}

func TestClear_RestoresUnset(t *testing.T) {
	t.Parallel()

	p := fullyLoaded().
		ClearPosition().
		ClearStacking().
		ClearJustification().
		ClearOrder().
		ClearTitle().
		SetBoxed(key.No)
	assert.Equal(t, key.New().Script(), p.Script())

	_, ok := p.Position()
	assert.False(t, ok)
	_, ok = p.Title()
	assert.False(t, ok)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	p := key.New()
	assert.True(t, p.Visible())
	assert.False(t, p.IsBoxed())
	_, ok := p.Justification()
	assert.False(t, ok)
	_, ok = p.Order()
	assert.False(t, ok)
	_, ok = p.Stacking()
	assert.False(t, ok)

	p = fullyLoaded()
	pos, ok := p.Position()
	require.True(t, ok)
	assert.Equal(t, key.Outside(key.Bottom, key.Left), pos)
	j, ok := p.Justification()
	require.True(t, ok)
	assert.Equal(t, key.JustifyLeft, j)
	o, ok := p.Order()
	require.True(t, ok)
	assert.Equal(t, key.SampleThenText, o)
	s, ok := p.Stacking()
	require.True(t, ok)
	assert.Equal(t, key.Horizontally, s)
	title, ok := p.Title()
	require.True(t, ok)
	assert.Equal(t, "Legend", title)
	assert.True(t, p.IsBoxed())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	orig := fullyLoaded()
	c := orig.Clone()
	c.Hide().SetTitle("changed")

	assert.Equal(t, "set key on outside bottom left horizontally Left reverse title 'Legend' box \n", orig.Script())
	assert.Equal(t, "set key off\n", c.Script())
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := key.New().Hide().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("set key off\n")), n)
	assert.Equal(t, "set key off\n", buf.String())
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	p := key.New(
		key.WithPosition(key.Inside(key.Top, key.Right)),
		key.WithStacking(key.Vertically),
		key.WithJustification(key.JustifyLeft),
		key.WithOrder(key.SampleThenText),
		key.WithTitle("Legend"),
		key.WithBox(),
	)
	assert.Equal(t, "set key on inside top right vertically Left reverse title 'Legend' box \n", p.Script())

	// last option wins
	p = key.New(key.WithTitle("a"), key.WithTitle("b"))
	assert.Equal(t, "set key on title 'b' \n", p.Script())

	assert.Equal(t, "set key off\n", key.New(key.WithTitle("x"), key.WithHidden()).Script())
}

func TestScripterInterface(t *testing.T) {
	t.Parallel()

	var s key.Scripter = key.New()
	assert.Equal(t, "set key on \n", s.Script())
}

func TestZeroValue_MatchesNew(t *testing.T) {
	t.Parallel()

	var p key.Properties
	assert.True(t, p.Visible())
	assert.Equal(t, key.New().Script(), p.Script())
	assert.Equal(t, "set key on \n", p.Script())

	p.Hide()
	assert.Equal(t, "set key off\n", p.Script())
}

func TestScript_OutOfRangeValuesAreSkipped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		p    *key.Properties
		want string
	}{
		{"stacking", key.New().SetStacking(key.Stacked(7)), "set key on \n"},
		{"justification", key.New().SetJustification(key.Justification(-1)), "set key on \n"},
		{"order", key.New().SetOrder(key.Order(5)).SetTitle("t"), "set key on title 't' \n"},
		{"placement", key.New().SetPosition(key.Position{Placement: 9, Vertical: key.Top, Horizontal: key.Left}), "set key on \n"},
		{"horizontal", key.New().SetPosition(key.Inside(key.Top, key.Horizontal(3))).SetStacking(key.Vertically),
			"set key on vertically \n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.p.Script())
		})
	}
}
