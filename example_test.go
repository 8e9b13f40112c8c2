package lazy_test

import (
	"fmt"
	"strings"

	"github.com/tychoish/lazy"
)

func ExampleGenerate() {
	naturals := lazy.Generate(func(in int) int { return in + 1 })(1)

	fmt.Println(lazy.Collect(lazy.Take(10, naturals)))
	// Output: [1 2 3 4 5 6 7 8 9 10]
}

func ExampleMap() {
	naturals := lazy.Generate(func(in int) int { return in + 1 })(1)
	shifted := lazy.Map(func(in int) int { return in + 10 }, naturals)

	fmt.Println(lazy.Collect(lazy.Take(10, shifted)))
	// Output: [11 12 13 14 15 16 17 18 19 20]
}

func ExampleFilter() {
	naturals := lazy.Generate(func(in int) int { return in + 1 })(1)
	odds := lazy.Filter(func(in int) bool { return in%2 == 1 }, naturals)

	fmt.Println(lazy.Collect(lazy.Take(10, odds)))
	// Output: [1 3 5 7 9 11 13 15 17 19]
}

func ExampleTake() {
	seq := lazy.Take(2, lazy.Items("merlin", "kip", "buddy"))

	for ; seq.Ok(); seq = seq.Next() {
		fmt.Println(seq.Value())
	}
	fmt.Println(seq)
	// Output:
	// merlin
	// kip
	// <ended>
}

func ExampleReduce() {
	powers := lazy.Generate(func(in int) int { return in * 2 })(1)

	fmt.Println(lazy.Reduce(func(acc, in int) int { return acc + in }, lazy.Take(8, powers), 0))
	// Output: 255
}

func ExampleReduceRight() {
	words := lazy.Items("one", "two", "three")
	join := func(acc []string, in string) []string { return append(acc, strings.ToUpper(in)) }

	fmt.Println(lazy.Reduce(join, words, nil))
	fmt.Println(lazy.ReduceRight(join, words, nil))
	// Output:
	// [ONE TWO THREE]
	// [THREE TWO ONE]
}

func ExampleSequence_Iterator() {
	squares := lazy.Map(func(in int) int { return in * in }, lazy.Generate(func(in int) int { return in + 1 })(1))

	for sq := range squares.Iterator() {
		if sq > 50 {
			break
		}
		fmt.Print(sq, " ")
	}
	fmt.Println()
	// Output: 1 4 9 16 25 36 49
}
