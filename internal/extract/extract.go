package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType is returned for file types the extractor cannot read.
var ErrUnsupportedType = errors.New("unsupported file type")

// FromBytes extracts plain text from an uploaded document. The format is
// chosen by file extension: .pdf, .docx, .txt and .rtf are supported. A .doc
// upload is accepted only when it is really an OOXML archive; legacy binary
// Word files are rejected.
func FromBytes(data []byte, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDOCX(data)
	case ".doc":
		if isOOXMLDocument(data) {
			return fromDOCX(data)
		}
		return "", fmt.Errorf("%w: legacy .doc", ErrUnsupportedType)
	case ".txt":
		return fromPlain(data)
	case ".rtf":
		text, err := fromPlain(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(stripRTF(text)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
}

func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func fromDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("read docx: document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	return stripDocxXML(string(raw)), nil
}

func fromPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("text is not valid utf-8")
	}
	return strings.TrimSpace(string(data)), nil
}

// isOOXMLDocument reports whether data is a zip archive carrying a Word
// document part.
func isOOXMLDocument(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

// stripDocxXML keeps the character data of document.xml, turning paragraph
// and line-break boundaries into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// rtfSkipGroups are destinations whose content is metadata, not body text.
var rtfSkipGroups = map[string]struct{}{
	"fonttbl":    {},
	"colortbl":   {},
	"stylesheet": {},
	"info":       {},
	"pict":       {},
}

// stripRTF reduces an RTF document to its plain text. Control words are
// dropped, \par and \line become newlines, and metadata groups are skipped
// entirely.
func stripRTF(raw string) string {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		switch raw[i] {
		case '{', '}':
			i++
		case '\r', '\n':
			i++
		case '\\':
			i++
			if i >= len(raw) {
				return b.String()
			}
			switch {
			case raw[i] == '\\' || raw[i] == '{' || raw[i] == '}':
				b.WriteByte(raw[i])
				i++
			case raw[i] == '*':
				i = skipRTFGroup(raw, i+1)
			case raw[i] == '\'':
				i++
				if i+1 < len(raw) {
					if v, err := strconv.ParseUint(raw[i:i+2], 16, 8); err == nil {
						b.WriteRune(cp1252Rune(byte(v)))
					}
					i += 2
				}
			default:
				start := i
				for i < len(raw) && isAlpha(raw[i]) {
					i++
				}
				word := raw[start:i]
				if i < len(raw) && (raw[i] == '-' || isDigit(raw[i])) {
					i++
					for i < len(raw) && isDigit(raw[i]) {
						i++
					}
				}
				if i < len(raw) && raw[i] == ' ' {
					i++
				}
				if _, skip := rtfSkipGroups[word]; skip {
					i = skipRTFGroup(raw, i)
					continue
				}
				switch word {
				case "par", "line":
					b.WriteByte('\n')
				case "tab":
					b.WriteByte('\t')
				}
			}
		default:
			b.WriteByte(raw[i])
			i++
		}
	}
	return b.String()
}

// cp1252Overrides covers the 0x80-0x9F range where Windows-1252, the default
// RTF codepage, diverges from Latin-1. Unassigned bytes fall through to their
// Latin-1 value.
var cp1252Overrides = map[byte]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E, 0x85: 0x2026,
	0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6, 0x89: 0x2030, 0x8A: 0x0160,
	0x8B: 0x2039, 0x8C: 0x0152, 0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019,
	0x93: 0x201C, 0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A, 0x9C: 0x0153,
	0x9E: 0x017E, 0x9F: 0x0178,
}

func cp1252Rune(v byte) rune {
	if r, ok := cp1252Overrides[v]; ok {
		return r
	}
	return rune(v)
}

// skipRTFGroup advances past the current group, assuming the opening brace
// was already consumed.
func skipRTFGroup(raw string, i int) int {
	depth := 1
	for i < len(raw) {
		switch raw[i] {
		case '\\':
			i += 2
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
