// Package todoexport renders a task list as a downloadable document.
package todoexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jrazmi/todoview/core/repositories/todosrepo/sources/yamlsource"
	"github.com/jung-kurt/gofpdf"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// ErrUnknownFormat is returned for a format outside the supported set.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats in the order they are offered.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatCSV, FormatPDF}
}

// Export renders tasks in format and returns the document with its content
// type. The yaml output can be fed back in as a seed file.
func Export(tasks []todosrepo.Task, format string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json; charset=utf-8", nil

	case FormatYAML:
		var buf bytes.Buffer
		if err := yamlsource.Encode(&buf, tasks); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "application/yaml; charset=utf-8", nil

	case FormatCSV:
		data, err := exportCSV(tasks)
		if err != nil {
			return nil, "", err
		}
		return data, "text/csv; charset=utf-8", nil

	case FormatPDF:
		data, err := exportPDF(tasks)
		if err != nil {
			return nil, "", err
		}
		return data, "application/pdf", nil

	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func exportCSV(tasks []todosrepo.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "title", "description", "completed"}); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, t := range tasks {
		if err := w.Write([]string{strconv.Itoa(t.ID), t.Title, t.Description, strconv.FormatBool(t.Completed)}); err != nil {
			return nil, fmt.Errorf("writing csv row %d: %w", t.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportPDF(tasks []todosrepo.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	// The core fonts are cp1252; tr converts UTF-8 text into that encoding.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Todo app", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr("Todo app"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	for _, t := range tasks {
		pdf.MultiCell(0, 6, pdfLine(tr, t), "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfLine is the text of one task in the pdf, already translated by tr.
func pdfLine(tr func(string) string, t todosrepo.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	return tr(fmt.Sprintf("%s %s - %s", mark, t.Title, t.Description))
}
