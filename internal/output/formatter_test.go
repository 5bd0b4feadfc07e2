package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/imorrison/euler/internal/domain"
	"github.com/imorrison/euler/pkg/decimal"
	"gopkg.in/yaml.v3"
)

func buildTestReport() *domain.Report {
	return &domain.Report{
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Results: []domain.Result{
			{ProblemID: "1", Title: "Multiples of 3 or 5", Method: domain.MethodClosedForm, Answer: decimal.NewWhole(233168), Sentence: "The sum of the multiples of 3 and 5 below 1000 is 233168.", Elapsed: 1500 * time.Microsecond},
			{ProblemID: "fib", Title: "Fibonacci number", Method: domain.MethodRecursive, Answer: decimal.NewWhole(55), Sentence: "55", Elapsed: time.Millisecond},
		},
	}
}

func TestPlainFormatter(t *testing.T) {
	out, err := PlainFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "The sum of the multiples of 3 and 5 below 1000 is 233168.\n55\n"
	if string(out) != want {
		t.Fatalf("plain output mismatch:\n got %q\nwant %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"EULER SOLUTIONS", "Problem 1: Multiples of 3 or 5", "233168", "closed-form", "0.0015000 seconds", "Problem fib: Fibonacci number"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in console output, got: %s", want, content)
		}
	}
}

func TestCSVFormatterOrder(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header+2 rows), got %d", len(lines))
	}
	if lines[1] != "1,Multiples of 3 or 5,closed-form,233168,1500000" {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "fib,") {
		t.Fatalf("expected fib second, got: %s", lines[2])
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Results []struct {
			ProblemID string `json:"problem_id"`
			Answer    string `json:"answer"`
			ElapsedNS int64  `json:"elapsed_ns"`
		} `json:"results"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(decoded.Results) != 2 || decoded.Results[0].Answer != "233168" || decoded.Results[1].ProblemID != "fib" {
		t.Fatalf("unexpected decoded report: %+v", decoded)
	}
	if decoded.Results[0].ElapsedNS != 1500000 {
		t.Fatalf("unexpected elapsed: %d", decoded.Results[0].ElapsedNS)
	}
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "problem_id: fib") {
		t.Fatalf("expected fib result in yaml, got: %s", out)
	}
	if !strings.Contains(string(out), "233168") {
		t.Fatalf("expected answer in yaml, got: %s", out)
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"plain":   "plain",
		"":        "plain",
		"TEXT":    "plain",
		"summary": "console",
		"console": "console",
		"csv":     "csv",
		"json":    "json",
		"yml":     "yaml",
	}
	for in, want := range tests {
		f := GetFormatterByName(in)
		if f == nil {
			t.Fatalf("no formatter for %q", in)
		}
		if f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %s, want %s", in, f.Name(), want)
		}
	}
	if GetFormatterByName("html") != nil {
		t.Fatalf("expected nil formatter for html")
	}
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestReport(), "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "55\n") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	err := GenerateReport(&buf, buildTestReport(), "pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console, csv, json, plain, yaml") {
		t.Fatalf("expected available formatters in error, got: %v", err)
	}
}

func TestGenerateReport_FormatterError(t *testing.T) {
	builtInFormatters = append(builtInFormatters, FormatterFunc{ID: "broken", F: func(*domain.Report) ([]byte, error) {
		return nil, errors.New("boom")
	}})
	defer func() { builtInFormatters = builtInFormatters[:len(builtInFormatters)-1] }()

	err := GenerateReport(&bytes.Buffer{}, buildTestReport(), "broken")
	if err == nil || !strings.Contains(err.Error(), "broken formatter: boom") {
		t.Fatalf("expected wrapped formatter error, got %v", err)
	}
}

func TestFormatElapsed(t *testing.T) {
	if got, want := FormatElapsed(1500*time.Microsecond), "0.0015000 seconds"; got != want {
		t.Errorf("FormatElapsed = %q, want %q", got, want)
	}
}
