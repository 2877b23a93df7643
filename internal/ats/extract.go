package ats

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// allowedTypes is the upload allow-list: MIME type to expected extension.
// Anything else is rejected before analysis starts.
var allowedTypes = map[string]string{
	"application/pdf": ".pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// IsSupported reports whether the MIME type is on the upload allow-list.
func IsSupported(mimeType string) bool {
	_, ok := allowedTypes[mimeType]
	return ok
}

// SupportedTypes returns the allow-listed MIME types.
func SupportedTypes() []string {
	out := make([]string, 0, len(allowedTypes))
	for mt := range allowedTypes {
		out = append(out, mt)
	}
	return out
}

// ExtractText pulls plain text out of an uploaded document, switching on the
// declared MIME type.
func ExtractText(mimeType string, data []byte) (string, error) {
	switch mimeType {
	case "application/pdf":
		return extractPDFText(data)

	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractDocxText(data)

	default:
		return "", fmt.Errorf("unsupported file type: %s", mimeType)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)

	doc, err := docx.ReadDocxFromMemory(r, int64(r.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// readAll buffers a bounded upload stream.
func readAll(r io.Reader, limit int64) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(r, limit)); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return buf.Bytes(), nil
}
