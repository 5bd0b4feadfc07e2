package config

import (
	"fmt"
	"os"

	"github.com/imorrison/euler/internal/calculation"
	"github.com/imorrison/euler/internal/domain"
	"github.com/imorrison/euler/internal/logging"
	"gopkg.in/yaml.v3"
)

// MaxFactors bounds the inclusion-exclusion walk, which visits up to 2^n subsets.
const MaxFactors = 16

// DefaultConfiguration returns the inputs the standalone programs are fixed to
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Multiples: domain.MultiplesConfig{
			Factors:   []int64{3, 5},
			Bound:     1000,
			Method:    domain.MethodClosedForm,
			Precision: domain.PrecisionInt64,
		},
		Fibonacci: domain.FibonacciConfig{
			Index:  10,
			Method: domain.MethodRecursive,
		},
		EvenFibonacci: domain.EvenFibonacciConfig{
			Limit: 4000000,
		},
		OutputFormat: "plain",
	}
}

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their DefaultConfiguration values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration data
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateMultiples(&config.Multiples); err != nil {
		return fmt.Errorf("multiples: %w", err)
	}
	if err := ip.validateFibonacci(&config.Fibonacci); err != nil {
		return fmt.Errorf("fibonacci: %w", err)
	}
	if config.EvenFibonacci.Limit < 1 {
		return fmt.Errorf("even_fibonacci: limit must be at least 1")
	}
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (ip *InputParser) validateMultiples(mc *domain.MultiplesConfig) error {
	if len(mc.Factors) == 0 {
		return fmt.Errorf("at least one factor is required")
	}
	if len(mc.Factors) > MaxFactors {
		return fmt.Errorf("at most %d factors are supported, got %d", MaxFactors, len(mc.Factors))
	}
	seen := make(map[int64]bool, len(mc.Factors))
	for _, f := range mc.Factors {
		if f <= 0 {
			return fmt.Errorf("factor %d must be positive", f)
		}
		if seen[f] {
			return fmt.Errorf("factor %d is listed more than once", f)
		}
		seen[f] = true
	}
	if mc.Bound < 1 {
		return fmt.Errorf("bound must be at least 1")
	}
	switch mc.Method {
	case domain.MethodClosedForm, domain.MethodLoop:
	default:
		return fmt.Errorf("method %q is not one of %s, %s", mc.Method, domain.MethodClosedForm, domain.MethodLoop)
	}
	switch mc.Precision {
	case domain.PrecisionInt64, domain.PrecisionExact:
	default:
		return fmt.Errorf("precision %q is not one of %s, %s", mc.Precision, domain.PrecisionInt64, domain.PrecisionExact)
	}
	if mc.Precision == domain.PrecisionExact && mc.Method == domain.MethodLoop {
		return fmt.Errorf("precision %s requires method %s", domain.PrecisionExact, domain.MethodClosedForm)
	}
	return nil
}

func (ip *InputParser) validateFibonacci(fc *domain.FibonacciConfig) error {
	if fc.Index < 0 {
		return fmt.Errorf("index cannot be negative")
	}
	switch fc.Method {
	case domain.MethodRecursive:
		if fc.Index > calculation.MaxRecursiveFibonacciIndex {
			return fmt.Errorf("index %d is too large for the recursive method (max %d); use %s",
				fc.Index, calculation.MaxRecursiveFibonacciIndex, domain.MethodIterative)
		}
	case domain.MethodIterative:
		if fc.Index > calculation.MaxFibonacciIndex {
			return fmt.Errorf("index %d overflows int64 (max %d)", fc.Index, calculation.MaxFibonacciIndex)
		}
	default:
		return fmt.Errorf("method %q is not one of %s, %s", fc.Method, domain.MethodRecursive, domain.MethodIterative)
	}
	return nil
}
