package linebreak

import "fmt"

func ExampleClassOf() {
	fmt.Println(ClassOf('a'))
	fmt.Println(ClassOf('('))
	fmt.Println(ClassOf(0x4E2D))
	// Output:
	// AL
	// OP
	// ID
}

func ExampleBreaker() {
	br := NewBreakerString("Hi there")
	for {
		r, b, ok := br.Next()
		if !ok {
			break
		}
		fmt.Printf("%q %v\n", r, b)
	}
	// Output:
	// 'H' Prohibited
	// 'i' Prohibited
	// ' ' Opportunity
	// 't' Prohibited
	// 'h' Prohibited
	// 'e' Prohibited
	// 'r' Prohibited
	// 'e' Opportunity
}

func ExampleLines() {
	for _, seg := range Lines("a b c") {
		fmt.Printf("%q\n", seg)
	}
	// Output:
	// "a "
	// "b "
	// "c"
}
