package domain

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Method selects the algorithm a solver uses
type Method string

const (
	MethodClosedForm Method = "closed-form"
	MethodLoop       Method = "loop"
	MethodRecursive  Method = "recursive"
	MethodIterative  Method = "iterative"
)

// methodAliases maps spellings accepted in configuration files and flags.
var methodAliases = map[string]Method{
	"closed-form": MethodClosedForm,
	"closed_form": MethodClosedForm,
	"closedform":  MethodClosedForm,
	"formula":     MethodClosedForm,
	"loop":        MethodLoop,
	"brute-force": MethodLoop,
	"recursive":   MethodRecursive,
	"naive":       MethodRecursive,
	"iterative":   MethodIterative,
}

// ParseMethod lowers and resolves aliases. Unknown names are returned as-is
// so validation can report them.
func ParseMethod(name string) Method {
	n := strings.ToLower(strings.TrimSpace(name))
	if m, ok := methodAliases[n]; ok {
		return m
	}
	return Method(n)
}

// UnmarshalYAML implements custom YAML unmarshaling so configuration files may use any alias
func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*m = ParseMethod(s)
	return nil
}

// Precision selects the integer width used by the multiples solver
type Precision string

const (
	PrecisionInt64 Precision = "int64"
	PrecisionExact Precision = "exact"
)

// MultiplesConfig holds the inputs for the sum of multiples below a bound
type MultiplesConfig struct {
	Factors   []int64   `yaml:"factors" json:"factors"`
	Bound     int64     `yaml:"bound" json:"bound"`
	Method    Method    `yaml:"method" json:"method"`
	Precision Precision `yaml:"precision" json:"precision"`
}

// FibonacciConfig holds the inputs for the n-th Fibonacci number
type FibonacciConfig struct {
	Index  int    `yaml:"index" json:"index"`
	Method Method `yaml:"method" json:"method"`
}

// EvenFibonacciConfig holds the inputs for the sum of even Fibonacci terms
type EvenFibonacciConfig struct {
	Limit int64 `yaml:"limit" json:"limit"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Multiples     MultiplesConfig     `yaml:"multiples" json:"multiples"`
	Fibonacci     FibonacciConfig     `yaml:"fibonacci" json:"fibonacci"`
	EvenFibonacci EvenFibonacciConfig `yaml:"even_fibonacci" json:"even_fibonacci"`
	LogLevel      string              `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	OutputFormat  string              `yaml:"output_format,omitempty" json:"output_format,omitempty"`
}
