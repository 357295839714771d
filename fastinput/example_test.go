package fastinput_test

import (
	"fmt"
	"strings"

	"github.com/KlasafGeijerstam/fast-input/fastinput"
)

func ExampleInput_NextLine() {
	in := fastinput.NewFromReader(strings.NewReader("Hello!\n12 2000"))
	fmt.Println(in.NextLine())
	a, b := fastinput.NextTuple[uint32, uint32](in)
	fmt.Println(a + b)
	// Output:
	// Hello!
	// 2012
}

func ExampleInput_Lines() {
	in := fastinput.NewFromReader(strings.NewReader("one\ntwo\nthree"))
	for line := range in.Lines() {
		fmt.Println(line)
	}
	// Output:
	// one
	// two
	// three
}

func ExampleNextAsIter() {
	in := fastinput.NewFromReader(strings.NewReader("1 2 3 4"))
	sum := 0
	for v := range fastinput.NextAsIter[int](in) {
		sum += v
	}
	fmt.Println(sum)
	// Output:
	// 10
}

func ExampleNextTriple() {
	in := fastinput.NewFromReader(strings.NewReader("Jakub 26 Mora"))
	name, age, city := fastinput.NextTriple[fastinput.Str, uint8, fastinput.Str](in)
	fmt.Printf("%s is %d and lives in %s\n", name, age, city)
	// Output:
	// Jakub is 26 and lives in Mora
}
