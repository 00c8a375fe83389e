// SPDX-License-Identifier: MIT
// Package quiver_test verifies insertion rules and deterministic queries.

package quiver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/catcheck/quiver"
)

// buildSquare creates A→B, A→C, B→D, C→D plus a loop on D and a parallel A→B.
func buildSquare(t *testing.T) *quiver.Quiver {
	t.Helper()
	q := quiver.New()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, q.AddObject(id, "obj "+id))
	}
	require.NoError(t, q.AddArrow("f", "A", "B", "f"))
	require.NoError(t, q.AddArrow("g", "A", "C", "g"))
	require.NoError(t, q.AddArrow("h", "B", "D", "h"))
	require.NoError(t, q.AddArrow("k", "C", "D", "k"))
	require.NoError(t, q.AddArrow("loop", "D", "D", ""))
	require.NoError(t, q.AddArrow("f2", "A", "B", "f'"))

	return q
}

func arrowIDs(as []quiver.Arrow) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}

	return out
}

func TestQuiver_AddObject(t *testing.T) {
	q := quiver.New()
	assert.ErrorIs(t, q.AddObject("", "x"), quiver.ErrEmptyID)
	require.NoError(t, q.AddObject("A", "alpha"))
	assert.ErrorIs(t, q.AddObject("A", "again"), quiver.ErrDuplicateObject)

	o, ok := q.Object("A")
	assert.True(t, ok)
	assert.Equal(t, "alpha", o.Label)
	assert.Equal(t, 1, q.ObjectCount())
}

func TestQuiver_AddArrow(t *testing.T) {
	q := quiver.New()
	require.NoError(t, q.AddObject("A", ""))

	assert.ErrorIs(t, q.AddArrow("", "A", "A", ""), quiver.ErrEmptyID)
	assert.ErrorIs(t, q.AddArrow("f", "A", "", ""), quiver.ErrEmptyID)
	assert.ErrorIs(t, q.AddArrow("f", "A", "B", ""), quiver.ErrObjectNotFound)
	assert.ErrorIs(t, q.AddArrow("f", "Z", "A", ""), quiver.ErrObjectNotFound)

	require.NoError(t, q.AddArrow("id", "A", "A", "id_A"))
	assert.ErrorIs(t, q.AddArrow("id", "A", "A", ""), quiver.ErrDuplicateArrow)

	a, err := q.MustArrow("id")
	require.NoError(t, err)
	assert.True(t, a.IsLoop())
	_, err = q.MustArrow("nope")
	assert.ErrorIs(t, err, quiver.ErrArrowNotFound)
}

func TestQuiver_QueriesAreSorted(t *testing.T) {
	q := buildSquare(t)

	assert.Equal(t, []string{"f", "f2", "g", "h", "k", "loop"}, arrowIDs(q.Arrows()))
	assert.Equal(t, []string{"f", "f2"}, arrowIDs(q.Hom("A", "B")))
	assert.Equal(t, []string{"f", "f2", "g"}, arrowIDs(q.Outgoing("A")))
	assert.Equal(t, []string{"h", "k", "loop"}, arrowIDs(q.Incoming("D")))
	assert.Equal(t, []string{"loop"}, arrowIDs(q.Outgoing("D")))
	assert.Nil(t, q.Hom("B", "A"))
	assert.Nil(t, q.Hom("missing", "A"))

	objs := q.Objects()
	require.Len(t, objs, 4)
	assert.Equal(t, "A", objs[0].ID)
	assert.Equal(t, "D", objs[3].ID)
}

func TestQuiver_Degree(t *testing.T) {
	q := buildSquare(t)

	in, out, err := q.Degree("D")
	require.NoError(t, err)
	assert.Equal(t, 3, in)
	assert.Equal(t, 1, out)

	in, out, err = q.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 0, in)
	assert.Equal(t, 3, out)

	_, _, err = q.Degree("Z")
	assert.ErrorIs(t, err, quiver.ErrObjectNotFound)
}

func TestQuiver_ReturnedValuesAreCopies(t *testing.T) {
	q := buildSquare(t)
	as := q.Arrows()
	as[0].To = "Z"

	a, ok := q.Arrow(as[0].ID)
	require.True(t, ok)
	assert.Equal(t, "B", a.To)
}
