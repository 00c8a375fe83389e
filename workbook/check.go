// SPDX-License-Identifier: MIT

package workbook

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/diag"
	"github.com/katalvlaran/catcheck/functor"
	"github.com/katalvlaran/catcheck/natural"
)

// checker carries the state of one Check run.
type checker struct {
	cfg        checkConfig
	report     *Report
	categories map[string]*category.Category // only successfully built entries
	functors   map[string]*functor.Functor
	seen       map[EntryKind]map[string]bool
}

// Check builds and verifies every entry of wb.
//
// Implementation:
//   - Stage 1: Categories, in document order.
//   - Stage 2: Functors, resolving source/target among built categories.
//   - Stage 3: Transformations, resolving from/to among built functors.
//
// A malformed entry never aborts the run: it is recorded with its error.
// The report is valid iff no entry is malformed and every result is valid
// (after promotion under WithStrict).
//
// Errors:
//   - ctx.Err() if ctx is cancelled between entries.
func (wb *Workbook) Check(ctx context.Context, opts ...CheckOption) (*Report, error) {
	cfg := newCheckConfig(opts...)
	ch := &checker{
		cfg:        cfg,
		report:     &Report{RunID: cfg.runID(), Workbook: wb.Name, Strict: cfg.strict, Valid: true, Entries: []Entry{}},
		categories: make(map[string]*category.Category),
		functors:   make(map[string]*functor.Functor),
		seen:       make(map[EntryKind]map[string]bool),
	}
	if ch.report.Workbook == "" {
		ch.report.Workbook = wb.Path
	}

	for _, d := range wb.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ch.category(d)
	}
	for _, fd := range wb.Functors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ch.functor(fd)
	}
	for _, td := range wb.Transformations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ch.transformation(td)
	}

	malformed, errs, warns := ch.report.Totals()
	cfg.logger.Debug("workbook checked",
		zap.String("run", ch.report.RunID),
		zap.String("workbook", ch.report.Workbook),
		zap.Bool("valid", ch.report.Valid),
		zap.Int("entries", len(ch.report.Entries)),
		zap.Int("malformed", malformed),
		zap.Int("errors", errs),
		zap.Int("warnings", warns),
	)

	return ch.report, nil
}

// claim registers name for kind, failing on empty or repeated names.
func (ch *checker) claim(k EntryKind, name string) error {
	if name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidEntry)
	}
	if ch.seen[k] == nil {
		ch.seen[k] = make(map[string]bool)
	}
	if ch.seen[k][name] {
		return fmt.Errorf("%s %q: %w", k, name, ErrDuplicateName)
	}
	ch.seen[k][name] = true

	return nil
}

func (ch *checker) category(d category.Description) {
	if err := ch.claim(KindCategory, d.Name); err != nil {
		ch.fail(KindCategory, d.Name, err)
		return
	}
	c, err := category.New(d,
		category.WithLogger(ch.cfg.logger),
		category.WithSuggestions(ch.cfg.suggestions),
	)
	if err != nil {
		ch.fail(KindCategory, d.Name, err)
		return
	}
	ch.categories[d.Name] = c
	ch.record(KindCategory, d.Name, c.Verify())
}

func (ch *checker) functor(fd FunctorDoc) {
	if err := validateEntry(fd); err != nil {
		ch.fail(KindFunctor, fd.Name, err)
		return
	}
	if err := ch.claim(KindFunctor, fd.Name); err != nil {
		ch.fail(KindFunctor, fd.Name, err)
		return
	}
	src, err := ch.lookupCategory(fd.Source)
	if err != nil {
		ch.fail(KindFunctor, fd.Name, err)
		return
	}
	dst, err := ch.lookupCategory(fd.Target)
	if err != nil {
		ch.fail(KindFunctor, fd.Name, err)
		return
	}
	f, err := functor.New(fd.Name, src, dst, fd.ObjectMap, fd.MorphismMap,
		functor.WithVariance(fd.Contravariant),
		functor.WithLogger(ch.cfg.logger),
	)
	if err != nil {
		ch.fail(KindFunctor, fd.Name, err)
		return
	}
	ch.functors[fd.Name] = f
	ch.record(KindFunctor, fd.Name, f.Verify())
}

func (ch *checker) transformation(td TransformationDoc) {
	if err := validateEntry(td); err != nil {
		ch.fail(KindTransformation, td.Name, err)
		return
	}
	if err := ch.claim(KindTransformation, td.Name); err != nil {
		ch.fail(KindTransformation, td.Name, err)
		return
	}
	from, err := ch.lookupFunctor(td.From)
	if err != nil {
		ch.fail(KindTransformation, td.Name, err)
		return
	}
	to, err := ch.lookupFunctor(td.To)
	if err != nil {
		ch.fail(KindTransformation, td.Name, err)
		return
	}
	t, err := natural.New(td.Name, from, to, td.Components, natural.WithLogger(ch.cfg.logger))
	if err != nil {
		ch.fail(KindTransformation, td.Name, err)
		return
	}
	ch.record(KindTransformation, td.Name, t.Verify())
}

func (ch *checker) lookupCategory(name string) (*category.Category, error) {
	c, ok := ch.categories[name]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", name, ErrUnknownReference)
	}

	return c, nil
}

func (ch *checker) lookupFunctor(name string) (*functor.Functor, error) {
	f, ok := ch.functors[name]
	if !ok {
		return nil, fmt.Errorf("functor %q: %w", name, ErrUnknownReference)
	}

	return f, nil
}

func (ch *checker) fail(k EntryKind, name string, err error) {
	ch.report.Valid = false
	ch.report.Entries = append(ch.report.Entries, Entry{Kind: k, Name: name, Error: err.Error(), err: err})
	ch.cfg.logger.Debug("workbook entry malformed",
		zap.String("kind", string(k)), zap.String("name", name), zap.Error(err))
}

func (ch *checker) record(k EntryKind, name string, res diag.Result) {
	if ch.cfg.strict {
		res = res.Strict()
	}
	if !res.Valid {
		ch.report.Valid = false
	}
	ch.report.Entries = append(ch.report.Entries, Entry{Kind: k, Name: name, Result: &res})
}
