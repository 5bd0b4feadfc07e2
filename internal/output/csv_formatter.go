package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/imorrison/euler/internal/domain"
)

// CSVFormatter writes one row per result in report order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Problem", "Title", "Method", "Answer", "ElapsedNanoseconds"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range report.Results {
		row := []string{
			r.ProblemID,
			r.Title,
			string(r.Method),
			r.Answer.String(),
			strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
