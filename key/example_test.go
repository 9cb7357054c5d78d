package key_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvplot/key"
)

// ExampleProperties_Script places the key in the top-right corner and stacks
// its entries vertically.
func ExampleProperties_Script() {
	p := key.New()
	p.SetPosition(key.Inside(key.Top, key.Right)).
		SetStacking(key.Vertically)

	fmt.Printf("%q\n", p.Script())
	// Output:
	// "set key on inside top right vertically \n"
}

// ExampleProperties_Hide shows that a hidden key ignores its other settings.
func ExampleProperties_Hide() {
	p := key.New(key.WithTitle("Legend"), key.WithBox())
	p.Hide()

	fmt.Printf("%q\n", p.Script())
	// Output:
	// "set key off\n"
}

// ExampleNew builds a key from options and streams it into a script.
func ExampleNew() {
	p := key.New(
		key.WithTitle("Legend"),
		key.WithBox(),
	)
	if _, err := p.WriteTo(os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// set key on title 'Legend' box
}
