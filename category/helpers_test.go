package category_test

import "github.com/katalvlaran/catcheck/category"

// objs returns unlabeled object descriptions for ids.
func objs(ids ...string) []category.ObjectDesc {
	out := make([]category.ObjectDesc, len(ids))
	for i, id := range ids {
		out[i] = category.ObjectDesc{ID: id}
	}

	return out
}

// mor declares a plain morphism labelled by its id.
func mor(id, from, to string) category.MorphismDesc {
	return category.MorphismDesc{ID: id, From: from, To: to, Label: id}
}

// ident declares the identity on obj.
func ident(obj string) category.MorphismDesc {
	id := "id_" + obj
	return category.MorphismDesc{ID: id, From: obj, To: obj, Label: id, IsIdentity: true}
}

// comp declares id = second∘first with the given label.
func comp(id, from, to, label, first, second string) category.MorphismDesc {
	return category.MorphismDesc{
		ID: id, From: from, To: to, Label: label,
		IsComposite: true, ComposedFrom: []string{first, second},
	}
}

// chain is A→B→C with identities and the composite h = g∘f declared.
func chain() category.Description {
	return category.Description{
		Name:    "chain",
		Objects: objs("A", "B", "C"),
		Morphisms: []category.MorphismDesc{
			ident("A"), ident("B"), ident("C"),
			mor("f", "A", "B"),
			mor("g", "B", "C"),
			comp("h", "A", "C", "h", "f", "g"),
		},
	}
}

// square is A→B→C→D with both bracketings of h∘g∘f declared as p and q.
func square(pLabel, qLabel string) category.Description {
	return category.Description{
		Name:    "square",
		Objects: objs("A", "B", "C", "D"),
		Morphisms: []category.MorphismDesc{
			ident("A"), ident("B"), ident("C"), ident("D"),
			mor("f", "A", "B"),
			mor("g", "B", "C"),
			mor("h", "C", "D"),
			comp("gf", "A", "C", "gf", "f", "g"),
			comp("hg", "B", "D", "hg", "g", "h"),
			comp("p", "A", "D", pLabel, "gf", "h"),
			comp("q", "A", "D", qLabel, "f", "hg"),
		},
	}
}
