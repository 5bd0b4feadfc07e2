package domain

import (
	"time"

	"github.com/imorrison/euler/pkg/decimal"
)

// Result is the outcome of running a single problem
type Result struct {
	ProblemID string        `yaml:"problem_id" json:"problem_id"`
	Title     string        `yaml:"title" json:"title"`
	Method    Method        `yaml:"method" json:"method"`
	Answer    decimal.Whole `yaml:"answer" json:"answer"`
	Sentence  string        `yaml:"sentence" json:"sentence"` // the line a standalone program prints
	Elapsed   time.Duration `yaml:"elapsed" json:"elapsed_ns"`
}

// Report collects results in the order they were requested
type Report struct {
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`
	Results     []Result  `yaml:"results" json:"results"`
}
