package jobsrv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
)

// maxPromptChars bounds the document text sent to the model
const maxPromptChars = 24000

// documentText pulls plain text out of a DOCX or text upload.
// PDF and legacy DOC are binary formats and are reported as unreadable.
func documentText(contentType string, data []byte) (string, error) {
	var text string
	switch contentType {
	case recruiting.MimeText:
		if !utf8.Valid(data) {
			return "", ErrRegistry.New(CodeUnreadableJD).WithDetail("reason", "text is not UTF-8")
		}
		text = string(data)
	case recruiting.MimeDOCX:
		var err error
		if text, err = docxText(data); err != nil {
			return "", ErrRegistry.NewWithCause(CodeUnreadableJD, err).WithDetail("content_type", contentType)
		}
	default:
		return "", ErrRegistry.New(CodeUnreadableJD).
			WithDetail("content_type", contentType).
			WithDetail("hint", "upload the job description as DOCX or plain text")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrRegistry.New(CodeUnreadableJD).WithDetail("reason", "document has no text")
	}
	if len(text) > maxPromptChars {
		text = strings.ToValidUTF8(text[:maxPromptChars], "")
	}
	return text, nil
}

// docxText reads word/document.xml and joins its text runs, one line per paragraph
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", io.ErrUnexpectedEOF
	}

	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var b strings.Builder
	dec := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
