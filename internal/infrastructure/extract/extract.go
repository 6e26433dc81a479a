package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePlainText = "text/plain"
	mimePDF       = "application/pdf"
	mimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDoc       = "application/msword"
)

// Extractor turns uploaded resume files into plain text for the skill scan.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Text extracts readable text from data. The content type wins; when it is
// missing or unknown the file extension is tried, then a best-effort UTF-8
// interpretation.
func (e *Extractor) Text(contentType, fileName string, data []byte) (string, error) {
	mime := normalizeContentType(contentType)
	if mime == "" || mime == "application/octet-stream" {
		mime = mimeFromExtension(fileName)
	}

	switch mime {
	case mimePlainText:
		return string(data), nil
	case mimePDF:
		return pdfText(data)
	case mimeDocx:
		return docxText(data)
	case mimeDoc:
		// Legacy binary .doc has no decoder here; the docx reader only
		// handles the OOXML container.
		return "", fmt.Errorf("unsupported file type: %s", mimeDoc)
	default:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func normalizeContentType(ct string) string {
	ct = strings.TrimSpace(strings.ToLower(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

func mimeFromExtension(fileName string) string {
	name := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(name, ".txt"):
		return mimePlainText
	case strings.HasSuffix(name, ".pdf"):
		return mimePDF
	case strings.HasSuffix(name, ".docx"):
		return mimeDocx
	case strings.HasSuffix(name, ".doc"):
		return mimeDoc
	}
	return ""
}
