// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/catcheck/builder"
	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/workbook"
)

// examples maps an example name to its constructor and default size.
var examples = map[string]struct {
	ctor  func(n int) builder.Constructor
	sized bool
	n     int
}{
	"discrete": {ctor: builder.Discrete, sized: true, n: 3},
	"arrow":    {ctor: func(int) builder.Constructor { return builder.Arrow() }},
	"ordinal":  {ctor: builder.Ordinal, sized: true, n: 3},
	"cyclic":   {ctor: builder.CyclicGroup, sized: true, n: 4},
}

func exampleNames() string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func (a *app) exampleCmd() *cobra.Command {
	var (
		name           string
		symbols        bool
		noIdentities   bool
		withoutFunctor bool
	)
	cmd := &cobra.Command{
		Use:   "example <" + strings.ReplaceAll(exampleNames(), ", ", "|") + "> [n]",
		Short: "Print a canonical category (and its identity functor) as a workbook",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, ok := examples[args[0]]
			if !ok {
				return fmt.Errorf("unknown example %q (have %s)", args[0], exampleNames())
			}
			n := ex.n
			if len(args) == 2 {
				if !ex.sized {
					return fmt.Errorf("example %q takes no size", args[0])
				}
				v, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("size %q: %w", args[1], err)
				}
				n = v
			}

			var opts []builder.BuilderOption
			if name != "" {
				opts = append(opts, builder.WithName(name))
			}
			if symbols {
				opts = append(opts, builder.WithIDScheme(builder.SymbolIDFn))
			}
			if noIdentities {
				opts = append(opts, builder.WithoutIdentities())
			}
			d, err := builder.Build(ex.ctor(n), opts...)
			if err != nil {
				return err
			}

			out, err := workbook.Marshal(exampleDocument(d, !withoutFunctor))
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(out)

			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "category name (default per example)")
	cmd.Flags().BoolVar(&symbols, "symbols", false, "name objects A, B, C, ... instead of 0, 1, 2, ...")
	cmd.Flags().BoolVar(&noIdentities, "no-identities", false, "omit identity morphisms")
	cmd.Flags().BoolVar(&withoutFunctor, "no-functor", false, "omit the identity functor entry")

	return cmd
}

func exampleDocument(d category.Description, withFunctor bool) workbook.Document {
	doc := workbook.Document{Name: d.Name, Categories: []category.Description{d}}
	if withFunctor {
		objects, morphisms := builder.IdentityMaps(d)
		doc.Functors = []workbook.FunctorDoc{{
			Name:        "id_" + d.Name,
			Source:      d.Name,
			Target:      d.Name,
			ObjectMap:   objects,
			MorphismMap: morphisms,
		}}
	}

	return doc
}
