package output

import (
	"bytes"
	"fmt"

	"github.com/imorrison/euler/internal/domain"
)

// PlainFormatter prints each result's sentence on its own line, exactly as the
// standalone programs do.
type PlainFormatter struct{}

func (p PlainFormatter) Name() string { return "plain" }

func (p PlainFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range report.Results {
		fmt.Fprintln(&buf, r.Sentence)
	}
	return buf.Bytes(), nil
}
