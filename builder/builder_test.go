package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/catcheck/builder"
	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/diag"
	"github.com/katalvlaran/catcheck/functor"
)

// verify builds d and returns its verification result.
func verify(t *testing.T, d category.Description) diag.Result {
	t.Helper()
	c, err := category.New(d)
	require.NoError(t, err)

	return c.Verify()
}

// TestBuilders_Functional checks counts, names and that every canonical
// category verifies valid with no warnings.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantName  string
		wantObj   int
		wantMor   int
		wantComps int
	}{
		{name: "Discrete(0)", ctor: builder.Discrete(0), wantName: "Disc(0)"},
		{name: "Discrete(3)", ctor: builder.Discrete(3), wantName: "Disc(3)", wantObj: 3, wantMor: 3},
		{name: "Arrow", ctor: builder.Arrow(), wantName: "2", wantObj: 2, wantMor: 3},
		{name: "Ordinal(1)", ctor: builder.Ordinal(1), wantName: "[1]", wantObj: 1, wantMor: 1},
		{name: "Ordinal(4)", ctor: builder.Ordinal(4), wantName: "[4]", wantObj: 4, wantMor: 14, wantComps: 4},
		{name: "CyclicGroup(1)", ctor: builder.CyclicGroup(1), wantName: "Z/1", wantObj: 1, wantMor: 1},
		{name: "CyclicGroup(3)", ctor: builder.CyclicGroup(3), wantName: "Z/3", wantObj: 1, wantMor: 7, wantComps: 4},
		{name: "CyclicGroup(12)", ctor: builder.CyclicGroup(12), wantName: "Z/12", wantObj: 1, wantMor: 12 + 121, wantComps: 121},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := builder.Build(tc.ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantName, d.Name)
			assert.Len(t, d.Objects, tc.wantObj)
			assert.Len(t, d.Morphisms, tc.wantMor)
			comps := 0
			for _, m := range d.Morphisms {
				if m.IsComposite {
					comps++
				}
			}
			assert.Equal(t, tc.wantComps, comps)

			res := verify(t, d)
			assert.True(t, res.Valid, res.String())
			assert.Empty(t, res.Warnings, res.String())
		})
	}
}

func TestBuilders_Idempotent(t *testing.T) {
	t.Parallel()
	for _, ctor := range []builder.Constructor{builder.Ordinal(5), builder.CyclicGroup(6), builder.Arrow()} {
		a, err := builder.Build(ctor)
		require.NoError(t, err)
		b, err := builder.Build(ctor)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestOrdinal_Layout(t *testing.T) {
	t.Parallel()
	d, err := builder.Build(builder.Ordinal(3))
	require.NoError(t, err)

	ids := make([]string, len(d.Morphisms))
	for i, m := range d.Morphisms {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"id_0", "id_1", "id_2", "0->1", "0->2", "1->2", "0->1->2"}, ids)

	last := d.Morphisms[len(d.Morphisms)-1]
	assert.Equal(t, "0->2", last.Label)
	assert.Equal(t, []string{"0->1", "1->2"}, last.ComposedFrom)

	c, err := category.New(d)
	require.NoError(t, err)
	assert.True(t, c.Equal("0->1->2", "0->2"))
	got, ok := c.Compose("0->1", "1->2")
	require.True(t, ok)
	assert.True(t, c.Equal(got, "0->2"))
}

func TestCyclicGroup_Arithmetic(t *testing.T) {
	t.Parallel()
	d, err := builder.Build(builder.CyclicGroup(4))
	require.NoError(t, err)
	c, err := category.New(d)
	require.NoError(t, err)

	assert.True(t, c.IsIdentityOn("g0", "0"))
	tests := []struct{ f, g, want string }{
		{"g1", "g1", "g2"},
		{"g1", "g3", "g0"},
		{"g3", "g3", "g2"},
		{"g0", "g3", "g3"},
		{"g2", "g0", "g2"},
	}
	for _, tc := range tests {
		got, ok := c.Compose(tc.f, tc.g)
		require.True(t, ok, "%s then %s", tc.f, tc.g)
		assert.True(t, c.Equal(got, tc.want), "%s then %s = %s, want %s", tc.f, tc.g, got, tc.want)
	}
	got, ok := c.ComposePath("g1", "g1", "g1", "g1")
	require.True(t, ok)
	assert.True(t, c.IsIdentity(got))
}

func TestBuilders_Options(t *testing.T) {
	t.Parallel()

	d, err := builder.Build(builder.Arrow(), builder.WithName("walk"), builder.WithIDScheme(builder.SymbolIDFn))
	require.NoError(t, err)
	assert.Equal(t, "walk", d.Name)
	assert.Equal(t, []category.ObjectDesc{{ID: "A"}, {ID: "B"}}, d.Objects)
	assert.Equal(t, "id_A", d.Morphisms[0].ID)
	assert.Equal(t, "f", d.Morphisms[2].ID)
	assert.Equal(t, "A", d.Morphisms[2].From)
	assert.Equal(t, "B", d.Morphisms[2].To)

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestBuilders_WithoutIdentities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantMissing int
	}{
		{"Discrete(2)", builder.Discrete(2), 2},
		{"Ordinal(3)", builder.Ordinal(3), 3},
		{"CyclicGroup(3)", builder.CyclicGroup(3), 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := builder.Build(tc.ctor, builder.WithoutIdentities())
			require.NoError(t, err)
			for _, m := range d.Morphisms {
				assert.False(t, m.IsIdentity, m.ID)
			}
			res := verify(t, d)
			assert.True(t, res.Valid, res.String())
			assert.Equal(t, tc.wantMissing, res.Count(diag.MissingIdentity))
		})
	}

	// Without a flagged identity, g0 is an ordinary endomorphism whose
	// products with the other elements are undeclared.
	d, err := builder.Build(builder.CyclicGroup(3), builder.WithoutIdentities())
	require.NoError(t, err)
	res := verify(t, d)
	assert.Equal(t, 5, res.Count(diag.ComposableButUndeclared))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Discrete(-1)", builder.Discrete(-1), builder.ErrTooFewObjects},
		{"Discrete(65)", builder.Discrete(65), builder.ErrTooManyObjects},
		{"Ordinal(0)", builder.Ordinal(0), builder.ErrTooFewObjects},
		{"Ordinal(17)", builder.Ordinal(17), builder.ErrTooManyObjects},
		{"CyclicGroup(0)", builder.CyclicGroup(0), builder.ErrTooFewObjects},
		{"CyclicGroup(33)", builder.CyclicGroup(33), builder.ErrTooManyObjects},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.Build(tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestIdentityMaps(t *testing.T) {
	t.Parallel()
	d, err := builder.Build(builder.Ordinal(3))
	require.NoError(t, err)

	objects, morphisms := builder.IdentityMaps(d)
	assert.Len(t, objects, 3)
	assert.Len(t, morphisms, len(d.Morphisms))
	assert.Equal(t, "0->1->2", morphisms["0->1->2"])

	c, err := category.New(d)
	require.NoError(t, err)
	f, err := functor.New("id", c, c, objects, morphisms)
	require.NoError(t, err)
	res := f.Verify()
	assert.True(t, res.Valid, res.String())
	assert.Empty(t, res.Warnings)
}

func TestBuilders_Opposite(t *testing.T) {
	t.Parallel()
	d, err := builder.Build(builder.Ordinal(4))
	require.NoError(t, err)
	c, err := category.New(d)
	require.NoError(t, err)

	op, err := c.Opposite()
	require.NoError(t, err)
	assert.Equal(t, "[4]^op", op.Name())
	res := op.Verify()
	assert.True(t, res.Valid, res.String())
	assert.Empty(t, res.Warnings)
}

func TestSymbolIDFn(t *testing.T) {
	t.Parallel()
	tests := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for idx, want := range tests {
		assert.Equal(t, want, builder.SymbolIDFn(idx), "idx %d", idx)
	}
	assert.Panics(t, func() { builder.SymbolIDFn(-1) })
}

func TestBuilders_SymbolIDsPastZ(t *testing.T) {
	t.Parallel()
	d, err := builder.Build(builder.Discrete(64), builder.WithIDScheme(builder.SymbolIDFn))
	require.NoError(t, err)
	require.Len(t, d.Objects, 64)
	assert.Equal(t, "Z", d.Objects[25].ID)
	assert.Equal(t, "AA", d.Objects[26].ID)
	assert.Equal(t, "BL", d.Objects[63].ID)

	res := verify(t, d)
	assert.True(t, res.Valid, res.String())
	assert.Empty(t, res.Warnings)
}

func TestBuild_PanickingIDScheme(t *testing.T) {
	t.Parallel()
	bounded := func(idx int) string {
		if idx > 1 {
			panic("out of names")
		}
		return builder.DefaultIDFn(idx)
	}

	var err error
	assert.NotPanics(t, func() {
		_, err = builder.Build(builder.Discrete(3), builder.WithIDScheme(bounded))
	})
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Contains(t, err.Error(), "out of names")
}
