package reporters

import (
	"encoding/json"
	"fmt"
	"regexp"

	"log-analyzer/internal/models"

	"github.com/spf13/afero"
)

// tablePlaceholder matches $table_json and ${table_json}; any other $ text is left as is.
var tablePlaceholder = regexp.MustCompile(`\$(?:\{table_json\}|table_json\b)`)

//go:generate mockgen -source=report_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	// Render substitutes the JSON-encoded rows into the report template.
	Render(data models.ReportData) ([]byte, error)
}

type reportRenderer struct {
	template []byte
}

// NewReportRenderer loads the template once; a missing template fails here, before any log is read.
func NewReportRenderer(fs afero.Fs, templatePath string) (ReportRenderer, error) {
	template, err := afero.ReadFile(fs, templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report template %q: %w", templatePath, err)
	}
	if !tablePlaceholder.Match(template) {
		return nil, fmt.Errorf("report template %q has no $table_json placeholder", templatePath)
	}
	return &reportRenderer{template: template}, nil
}

func (r *reportRenderer) Render(data models.ReportData) ([]byte, error) {
	if data == nil {
		data = models.ReportData{}
	}
	table, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report data: %w", err)
	}
	return tablePlaceholder.ReplaceAllLiteral(r.template, table), nil
}
