package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	calc "github.com/imorrison/euler/internal/calculation"
)

// compare_methods checks the closed form against the loop for every bound up
// to a maximum, for a comma separated factor list.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: compare_methods <factors e.g. 3,5> <max-bound>")
		return
	}
	var factors []int64
	for _, s := range strings.Split(os.Args[1], ",") {
		f, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			panic(err)
		}
		factors = append(factors, f)
	}
	maxBound, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		panic(err)
	}

	mismatches := 0
	for bound := int64(0); bound <= maxBound; bound++ {
		closed, err := calc.SumOfMultiples(factors, bound)
		if err != nil {
			panic(err)
		}
		loop, err := calc.SumOfMultiplesLoop(factors, bound)
		if err != nil {
			panic(err)
		}
		if closed != loop {
			mismatches++
			fmt.Printf("bound=%d closed=%d loop=%d\n", bound, closed, loop)
		}
	}

	last, err := calc.SumOfMultiplesWhole(factors, maxBound)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", calc.MultiplesSentence(factors, maxBound, last.String()))
	fmt.Printf("bounds checked: %d, mismatches: %d\n", maxBound+1, mismatches)
	if mismatches > 0 {
		os.Exit(1)
	}
}
