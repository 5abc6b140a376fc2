package gomorekit_test

import (
	"fmt"
	"time"

	"github.com/max-chem-eng/gomorekit"
	"github.com/max-chem-eng/gomorekit/internal/testutil"
)

func ExampleFindMissingNumber() {
	fmt.Println(gomorekit.FindMissingNumber([]int{3, 0, 1}))
	fmt.Println(gomorekit.FindMissingNumber([]int{9, 6, 4, 2, 3, 5, 7, 0, 1}))
	fmt.Println(gomorekit.FindMissingNumber([]int{0, 1}))
	// Output:
	// 2
	// 8
	// 2
}

func ExampleFindMissingNumberStrict() {
	_, err := gomorekit.FindMissingNumberStrict([]int{0, 5})
	fmt.Println(err)
	// Output:
	// index 1: value out of range: 5 not in [0, 2]
}

func ExampleDebouncer() {
	clock := testutil.NewFakeClock()
	d, _ := gomorekit.NewDebouncer(func(s string) {
		fmt.Println("search:", s)
	}, 300*time.Millisecond, gomorekit.WithClock(clock))

	d.Call("g")
	d.Call("go")
	d.Call("gol")
	clock.Advance(time.Second)
	// Output:
	// search: gol
}
