package option_test

import (
	"fmt"
	"strings"

	"github.com/ib-77/monads/pkg/monads/option"
)

func ExampleBind() {
	greeting := option.Bind(option.Some("hello"), strings.ToUpper)
	missing := option.Bind(option.None[string](), strings.ToUpper)

	fmt.Println(greeting, missing)
	// Output: HELLO None
}

func ExampleMap() {
	describe := func(o option.Option[int]) string {
		return option.Map(o,
			func(n int) string { return fmt.Sprintf("got %d", n) },
			func() string { return "nothing" },
		)
	}

	fmt.Println(describe(option.Some(3)))
	fmt.Println(describe(option.None[int]()))
	// Output:
	// got 3
	// nothing
}

func ExampleBindAs() {
	name := "gopher"
	ptr := option.BindAs[option.Nullable[*int], *string, *int](option.NullableOf(&name), func(s *string) *int {
		n := len(*s)
		return &n
	})

	fmt.Println(*ptr.MustValue())
	// Output: 6
}
