package vec_test

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/memkit/vec"
)

func ExampleRaw() {
	// Three-byte records, no element type recorded.
	v := vec.NewRaw(3)

	for _, rec := range []string{"foo", "bar", "baz"} {
		if err := v.Push([]byte(rec)); err != nil {
			panic(err)
		}
	}

	v.Sort(vec.Ascending)

	it := v.Iter()
	for it.Next() {
		fmt.Println(string(it.Bytes()))
	}

	// Output:
	// bar
	// baz
	// foo
}

func ExampleVec() {
	v := vec.From([]int{3, 1, 2})
	v.Push(4)

	v.Sort(func(a, b int) int { return a - b })

	for _, n := range v.All() {
		fmt.Print(n, " ")
	}
	fmt.Println()

	// Output:
	// 1 2 3 4
}

func ExampleRaw_WriteTo() {
	v, err := vec.NewRawFrom(2, []byte{1, 1, 2, 2, 3, 3})
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	if _, err := v.WriteToWithOptions(&buf, vec.WithCompression(vec.CompressionZstd)); err != nil {
		panic(err)
	}

	restored, err := vec.ReadRawFrom(&buf)
	if err != nil {
		panic(err)
	}

	fmt.Println(restored.Len(), restored.ElemSize())

	// Output:
	// 3 2
}
