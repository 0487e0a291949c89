package subst_test

import (
	"fmt"

	"github.com/lwmacct/251207-go-pkg-sexpand/pkg/subst"
)

// Example 演示默认的按行渲染。
func Example() {
	out, _ := subst.Render([]string{"n01", "n02"}, "{}.example.com")
	fmt.Println(out)

	// Output:
	// n01.example.com
	// n02.example.com
}

// Example_separator 演示自定义分隔符。
func Example_separator() {
	out, _ := subst.Render([]string{"n01", "n02"}, "{}", subst.WithSeparator(","))
	fmt.Println(out)

	// Output:
	// n01,n02
}
