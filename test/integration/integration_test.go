package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/imorrison/euler/internal/calculation"
	"github.com/imorrison/euler/internal/config"
	"github.com/imorrison/euler/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	defaults := config.DefaultConfiguration()
	assert.Equal(t, defaults.Multiples, cfg.Multiples)
	assert.Equal(t, defaults.Fibonacci, cfg.Fibonacci)
	assert.Equal(t, "warn", cfg.LogLevel)

	engine := calculation.NewEngine()
	report, err := engine.RunProblems(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	assert.Equal(t, "233168", report.Results[0].Answer.String())
	assert.Equal(t, "4613732", report.Results[1].Answer.String())
	assert.Equal(t, "55", report.Results[2].Answer.String())
}

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	report, err := calculation.NewEngine().RunProblems(context.Background(), cfg, nil)
	require.NoError(t, err)

	for _, format := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		assert.NoError(t, output.GenerateReport(&buf, report, format), format)
		assert.NotEmpty(t, buf.String(), format)
	}
}

func TestStandaloneOutputs(t *testing.T) {
	cfg := config.DefaultConfiguration()
	engine := calculation.NewEngine()

	multiples, err := engine.RunProblem(context.Background(), cfg, calculation.ProblemMultiples)
	require.NoError(t, err)
	assert.Equal(t, "The sum of the multiples of 3 and 5 below 1000 is 233168.", multiples.Sentence)

	fib, err := engine.RunProblem(context.Background(), cfg, calculation.ProblemFibonacci)
	require.NoError(t, err)
	assert.Equal(t, "55", fib.Sentence)
}

func TestClosedFormAndLoopAgree(t *testing.T) {
	for bound := int64(1); bound <= 2000; bound += 37 {
		closed, err := calculation.SumOfMultiples([]int64{3, 5}, bound)
		require.NoError(t, err)
		loop, err := calculation.SumOfMultiplesLoop([]int64{3, 5}, bound)
		require.NoError(t, err)
		assert.Equal(t, loop, closed, "bound=%d", bound)
	}
}
