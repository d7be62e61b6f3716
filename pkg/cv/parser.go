package cv

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

var (
	reXMLTag      = regexp.MustCompile(`<[^>]+>`)
	reInlineSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines    = regexp.MustCompile(`\s*\n\s*`)
)

// Ext returns the lower-cased extension if the format is supported.
func Ext(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".docx":
		return ext, nil
	}
	return "", ErrUnsupportedFormat
}

// ExtractText returns the plain text of a .pdf or .docx file.
func ExtractText(filename string, data []byte) (string, error) {
	ext, err := Ext(filename)
	if err != nil {
		return "", err
	}
	if ext == ".pdf" {
		return pdfText(data)
	}
	return docxText(data)
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("pdf text: %w", err)
	}
	return cleanText(buf.String()), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("read docx: %w", err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("read docx: %w", err)
		}
		doc := string(raw)
		doc = strings.ReplaceAll(doc, "</w:p>", "\n")
		doc = strings.ReplaceAll(doc, "<w:tab/>", "\t")
		doc = reXMLTag.ReplaceAllString(doc, "")
		return cleanText(unescapeXML(doc)), nil
	}
	return "", errors.New("read docx: word/document.xml not found")
}

var xmlEntities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")

func unescapeXML(s string) string { return xmlEntities.Replace(s) }

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reInlineSpace.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
