// Package export renders task collections for `tracker export`.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/tracker/internal/domain"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Formats lists the supported export formats.
var Formats = []string{FormatJSON, FormatYAML, FormatCSV, FormatPDF}

// Exporter implements domain.TaskExporter.
type Exporter struct {
	// Title is printed at the top of PDF reports.
	Title string
}

// New creates an Exporter with the default report title.
func New() *Exporter {
	return &Exporter{Title: "Tasks"}
}

// Export encodes tasks as format.
func (e *Exporter) Export(tasks domain.Tasks, format string) ([]byte, error) {
	if tasks == nil {
		tasks = domain.Tasks{}
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		out, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML, "yml":
		return yaml.Marshal(tasks)
	case FormatCSV:
		return e.csv(tasks)
	case FormatPDF:
		return e.pdf(tasks)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

func (e *Exporter) csv(tasks domain.Tasks) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "text", "createdAt", "isDone"})
	for _, t := range tasks {
		_ = w.Write([]string{t.ID, t.Text, t.CreatedAt, strconv.FormatBool(t.IsDone)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// pdf renders with the core Arial font, so text is translated to cp1252.
// Characters outside that code page are not reproduced.
func (e *Exporter) pdf(tasks domain.Tasks) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(e.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks.", "0", "L", false)
	}
	done := 0
	for _, t := range tasks {
		mark := "[ ]"
		if t.IsDone {
			mark = "[x]"
			done++
		}
		line := fmt.Sprintf("%s %s  (%s)", mark, t.Text, t.CreatedAt)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(40, 6, fmt.Sprintf("%d tasks, %d done", len(tasks), done))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Exporter implements domain.TaskExporter.
var _ domain.TaskExporter = (*Exporter)(nil)
