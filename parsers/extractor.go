package parsers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
)

// ExtractionError indicates the uploaded document could not be read or
// contained no extractable text. Callers should treat it as a bad upload,
// not an internal failure.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// TextExtractor turns resume files into plain text
type TextExtractor struct{}

// NewTextExtractor creates a new resume text extractor
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractFromFile determines file type and extracts text accordingly
func (e *TextExtractor) ExtractFromFile(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".pdf":
		return e.ExtractPDF(filePath)
	case ".docx":
		return e.ExtractDocx(filePath)
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", &ExtractionError{Reason: "failed to read text file", Err: err}
		}
		if strings.TrimSpace(string(content)) == "" {
			return "", &ExtractionError{Reason: "document contains no text"}
		}
		return string(content), nil
	default:
		return "", &ExtractionError{Reason: fmt.Sprintf("unsupported file format: %s", ext)}
	}
}

// ExtractPDF extracts text from a PDF file, concatenated in page order.
// In-process extraction is tried first; pdftotext is kept as a fallback
// for documents the pure-Go reader chokes on.
func (e *TextExtractor) ExtractPDF(filePath string) (string, error) {
	if text, err := e.extractPDFInProcess(filePath); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	if text, err := e.extractWithPdfToText(filePath); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	return "", &ExtractionError{Reason: "document could not be opened or contains no extractable text"}
}

func (e *TextExtractor) extractPDFInProcess(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractWithPdfToText shells out to pdftotext (poppler-utils)
func (e *TextExtractor) extractWithPdfToText(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %v", err)
	}

	tempFile := filePath + ".txt"
	defer os.Remove(tempFile)

	cmd := exec.Command("pdftotext", "-layout", filePath, tempFile)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %v", err)
	}

	content, err := os.ReadFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text: %v", err)
	}

	return string(content), nil
}

// ExtractDocx extracts the paragraph text of a DOCX document
func (e *TextExtractor) ExtractDocx(filePath string) (string, error) {
	doc, err := document.Open(filePath)
	if err != nil {
		return "", &ExtractionError{Reason: "failed to open docx", Err: err}
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", &ExtractionError{Reason: "document contains no text"}
	}
	return sb.String(), nil
}

// SplitLines breaks raw resume text into trimmed, non-empty lines,
// preserving their original order.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
