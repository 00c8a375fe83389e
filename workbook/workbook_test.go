package workbook_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/catcheck/builder"
	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/diag"
	"github.com/katalvlaran/catcheck/workbook"
)

const arrowDoc = `
name: lesson
categories:
  - name: "2"
    objects: [{id: "0"}, {id: "1"}]
    morphisms:
      - {id: id_0, from: "0", to: "0", isIdentity: true}
      - {id: id_1, from: "1", to: "1", isIdentity: true}
      - {id: f, from: "0", to: "1"}
functors:
  - name: F
    source: "2"
    target: "2"
    objectMap: {"0": "0", "1": "1"}
    morphismMap: {id_0: id_0, id_1: id_1, f: f}
transformations:
  - {name: alpha, from: F, to: F, components: {"0": id_0, "1": id_1}}
`

func parse(t *testing.T, src string) *workbook.Workbook {
	t.Helper()
	wb, err := workbook.Parse([]byte(src))
	require.NoError(t, err)

	return wb
}

func check(t *testing.T, wb *workbook.Workbook, opts ...workbook.CheckOption) *workbook.Report {
	t.Helper()
	rep, err := wb.Check(context.Background(), opts...)
	require.NoError(t, err)

	return rep
}

func TestCheck_Valid(t *testing.T) {
	t.Parallel()
	rep := check(t, parse(t, arrowDoc), workbook.WithRunID(func() string { return "run-1" }))

	assert.True(t, rep.Valid, rep.String())
	assert.Equal(t, "run-1", rep.RunID)
	assert.Equal(t, "lesson", rep.Workbook)
	require.Len(t, rep.Entries, 3)

	kinds := []workbook.EntryKind{workbook.KindCategory, workbook.KindFunctor, workbook.KindTransformation}
	for i, e := range rep.Entries {
		assert.Equal(t, kinds[i], e.Kind)
		assert.True(t, e.OK(), e.Name)
		assert.NoError(t, e.Err())
	}
	malformed, errs, warns := rep.Totals()
	assert.Zero(t, malformed+errs+warns)
}

func TestCheck_DefaultRunIDIsUUID(t *testing.T) {
	t.Parallel()
	rep := check(t, parse(t, arrowDoc))
	_, err := uuid.Parse(rep.RunID)
	assert.NoError(t, err)
}

func TestParse_JSON(t *testing.T) {
	t.Parallel()
	src := `{"categories": [{"name": "one", "objects": [{"id": "A"}], "morphisms": [{"id": "id_A", "from": "A", "to": "A", "isIdentity": true}]}]}`
	rep := check(t, parse(t, src))
	assert.True(t, rep.Valid, rep.String())
	e, ok := rep.Entry(workbook.KindCategory, "one")
	require.True(t, ok)
	assert.Empty(t, e.Result.Warnings)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	_, err := workbook.Parse([]byte("categories: [{name: x, objects: [], morphisms: [], colour: red}]"))
	assert.ErrorIs(t, err, workbook.ErrParse)

	_, err = workbook.Parse([]byte("categories: {"))
	assert.ErrorIs(t, err, workbook.ErrParse)

	wb, err := workbook.Parse(nil)
	require.NoError(t, err)
	rep := check(t, wb)
	assert.True(t, rep.Valid)
	assert.Empty(t, rep.Entries)
}

func TestCheck_MalformedEntries(t *testing.T) {
	t.Parallel()
	src := `
categories:
  - name: broken
    objects: [{id: A}]
    morphisms: [{id: f, from: A, to: B}]
  - name: ok
    objects: [{id: A}]
    morphisms: [{id: id_A, from: A, to: A, isIdentity: true}]
  - name: ok
    objects: []
    morphisms: []
functors:
  - {name: F, source: broken, target: ok, objectMap: {}, morphismMap: {}}
  - {name: G, source: ok, target: nowhere, objectMap: {}, morphismMap: {}}
  - {name: H, source: ok, objectMap: {}, morphismMap: {}}
  - {name: I, source: ok, target: ok, objectMap: {A: A}, morphismMap: {}}
transformations:
  - {name: alpha, from: F, to: F, components: {}}
`
	rep := check(t, parse(t, src))
	assert.False(t, rep.Valid)

	tests := []struct {
		kind workbook.EntryKind
		name string
		want error
	}{
		{workbook.KindCategory, "broken", category.ErrMalformedCategory},
		{workbook.KindFunctor, "F", workbook.ErrUnknownReference},
		{workbook.KindFunctor, "G", workbook.ErrUnknownReference},
		{workbook.KindFunctor, "H", workbook.ErrInvalidEntry},
		{workbook.KindTransformation, "alpha", workbook.ErrUnknownReference},
	}
	for _, tc := range tests {
		e, ok := rep.Entry(tc.kind, tc.name)
		require.True(t, ok, tc.name)
		assert.ErrorIs(t, e.Err(), tc.want, tc.name)
		assert.NotEmpty(t, e.Error)
		assert.Nil(t, e.Result)
	}

	var dup int
	for _, e := range rep.Entries {
		if e.Kind == workbook.KindCategory && e.Name == "ok" {
			if e.Err() != nil {
				assert.ErrorIs(t, e.Err(), workbook.ErrDuplicateName)
				dup++
			} else {
				assert.True(t, e.OK())
			}
		}
	}
	assert.Equal(t, 1, dup)

	e, ok := rep.Entry(workbook.KindFunctor, "I")
	require.True(t, ok)
	assert.Error(t, e.Err(), "functor I leaves id_A unmapped")

	malformed, _, _ := rep.Totals()
	assert.Equal(t, 7, malformed)
	assert.Contains(t, rep.String(), `functor "G": malformed:`)
}

func TestCheck_Strict(t *testing.T) {
	t.Parallel()
	src := `
categories:
  - name: bare
    objects: [{id: A}]
    morphisms: []
`
	wb := parse(t, src)

	rep := check(t, wb)
	assert.True(t, rep.Valid)
	e, _ := rep.Entry(workbook.KindCategory, "bare")
	assert.True(t, e.Result.Has(diag.MissingIdentity))

	rep = check(t, wb, workbook.WithStrict(true))
	assert.False(t, rep.Valid)
	assert.True(t, rep.Strict)
	e, _ = rep.Entry(workbook.KindCategory, "bare")
	assert.Equal(t, diag.MissingIdentity, e.Result.Errors[0].Kind)
}

func TestCheck_Suggestions(t *testing.T) {
	t.Parallel()
	src := `
categories:
  - name: chain
    objects: [{id: A}, {id: B}, {id: C}]
    morphisms:
      - {id: id_A, from: A, to: A, isIdentity: true}
      - {id: id_B, from: B, to: B, isIdentity: true}
      - {id: id_C, from: C, to: C, isIdentity: true}
      - {id: f, from: A, to: B}
      - {id: g, from: B, to: C}
`
	wb := parse(t, src)

	e, _ := check(t, wb).Entry(workbook.KindCategory, "chain")
	assert.Equal(t, 1, e.Result.Count(diag.ComposableButUndeclared))

	e, _ = check(t, wb, workbook.WithSuggestions(false)).Entry(workbook.KindCategory, "chain")
	assert.Empty(t, e.Result.Warnings)
}

func TestCheck_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parse(t, arrowDoc).Check(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck_Logs(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	check(t, parse(t, arrowDoc), workbook.WithLogger(zap.New(core)))

	assert.Equal(t, 1, logs.FilterMessage("workbook checked").Len())
	assert.Equal(t, 1, logs.FilterMessage("functor verified").Len())
	assert.Equal(t, 1, logs.FilterMessage("transformation verified").Len())

	assert.Panics(t, func() { workbook.WithLogger(nil) })
	assert.Panics(t, func() { workbook.WithRunID(nil) })
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "lesson.yaml")
	require.NoError(t, os.WriteFile(path, []byte(arrowDoc), 0o600))

	wb, err := workbook.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, wb.Path)
	assert.Len(t, wb.Categories, 1)

	_, err = workbook.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_BuilderCategory(t *testing.T) {
	t.Parallel()
	d, err := builder.Build(builder.Ordinal(3))
	require.NoError(t, err)

	data, err := workbook.Marshal(workbook.Document{Categories: []category.Description{d}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "composedFrom:")

	rep := check(t, parse(t, string(data)))
	assert.True(t, rep.Valid, rep.String())
	e, ok := rep.Entry(workbook.KindCategory, "[3]")
	require.True(t, ok)
	assert.Empty(t, e.Result.Warnings)
}

func TestCheck_EmptyWorkbookRendersEmptyEntries(t *testing.T) {
	t.Parallel()
	rep := check(t, parse(t, "name: empty\n"), workbook.WithRunID(func() string { return "r" }))
	require.NotNil(t, rep.Entries)
	assert.Empty(t, rep.Entries)

	out, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"entries":[]`)
}
