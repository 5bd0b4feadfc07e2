package output

import (
	"github.com/imorrison/euler/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return yaml.Marshal(report)
}
