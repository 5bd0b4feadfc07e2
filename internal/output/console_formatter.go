package output

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/imorrison/euler/internal/domain"
)

// ConsoleFormatter provides a headed summary with method and timing per problem.
// Colour follows fatih/color's terminal detection for stdout.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	heading := color.New(color.Bold)
	answer := color.New(color.FgGreen)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, heading.Sprint("EULER SOLUTIONS"))
	fmt.Fprintln(&buf, "================================")
	for _, r := range report.Results {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s\n", heading.Sprintf("Problem %s: %s", r.ProblemID, r.Title))
		fmt.Fprintf(&buf, "  Answer:  %s\n", answer.Sprint(r.Answer.String()))
		fmt.Fprintf(&buf, "  Method:  %s\n", r.Method)
		fmt.Fprintf(&buf, "  Elapsed: %s\n", FormatElapsed(r.Elapsed))
		fmt.Fprintf(&buf, "  %s\n", r.Sentence)
	}
	return buf.Bytes(), nil
}
