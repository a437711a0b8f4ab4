package todoexport

import (
	"bytes"
	"testing"

	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"github.com/jung-kurt/gofpdf"
)

func TestPDFLineEncoding(t *testing.T) {
	tr := gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")

	tests := []struct {
		task todosrepo.Task
		want string
	}{
		{todosrepo.Task{Title: "Study", Description: "Algebra"}, "[ ] Study - Algebra"},
		{todosrepo.Task{Title: "Café", Description: "Über", Completed: true}, "[x] Caf\xe9 - \xdcber"},
		{todosrepo.Task{Title: "Sally's books"}, "[ ] Sally's books - "},
	}

	for _, tt := range tests {
		got := pdfLine(tr, tt.task)
		if got != tt.want {
			t.Errorf("pdfLine(%q) = %q, want %q", tt.task.Title, got, tt.want)
		}
	}
}

func TestExportPDFNonASCII(t *testing.T) {
	tasks := []todosrepo.Task{{ID: 1, Title: "Café", Description: "Über", Completed: true}}

	data, err := exportPDF(tasks)
	if err != nil {
		t.Fatalf("exportPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a pdf")
	}
}
