// Command fibonacci prints the 10th Fibonacci number.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/imorrison/euler/internal/calculation"
	"github.com/imorrison/euler/internal/config"
	"github.com/imorrison/euler/internal/logging"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	engine := calculation.NewEngine()
	engine.SetLogger(logging.New(stderr, logging.DefaultLevel))

	result, err := engine.RunProblem(context.Background(), config.DefaultConfiguration(), calculation.ProblemFibonacci)
	if err != nil {
		return 1
	}
	fmt.Fprintln(stdout, result.Sentence)
	return 0
}
