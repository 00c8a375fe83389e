package functor_test

import (
	"fmt"

	"github.com/katalvlaran/catcheck/category"
	"github.com/katalvlaran/catcheck/functor"
)

// ExampleFunctor_Verify maps the walking arrow onto a loop and forgets that
// identities must go to identities.
func ExampleFunctor_Verify() {
	arrow, _ := category.New(category.Description{
		Name:    "2",
		Objects: []category.ObjectDesc{{ID: "0"}, {ID: "1"}},
		Morphisms: []category.MorphismDesc{
			{ID: "id_0", From: "0", To: "0", IsIdentity: true},
			{ID: "id_1", From: "1", To: "1", IsIdentity: true},
			{ID: "a", From: "0", To: "1"},
		},
	})
	loop, _ := category.New(category.Description{
		Name:    "N",
		Objects: []category.ObjectDesc{{ID: "*"}},
		Morphisms: []category.MorphismDesc{
			{ID: "e", From: "*", To: "*", IsIdentity: true},
			{ID: "s", From: "*", To: "*"},
		},
	})

	f, err := functor.New("F", arrow, loop,
		map[string]string{"0": "*", "1": "*"},
		map[string]string{"id_0": "e", "id_1": "s", "a": "s"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Verify())

	// Output:
	// invalid (1 errors, 0 warnings)
	//   error   IdentityNotPreserved: F(id_1) = "s" is not a declared identity on "*"
}
