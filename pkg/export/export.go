package export

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrRegistry = errx.NewRegistry("EXPORT")

var (
	CodeNoColumns   = ErrRegistry.Register("NO_COLUMNS", errx.TypeValidation, http.StatusBadRequest, "Nothing to export: no columns configured")
	CodeWriteFailed = ErrRegistry.Register("WRITE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to write spreadsheet")
)

// Workbook renders records as a single-sheet .xlsx: a bold header row followed by
// one row per record, in input order.
func Workbook(sheet string, cols []filter.Column, records []filter.Record) ([]byte, error) {
	if len(cols) == 0 {
		return nil, ErrRegistry.New(CodeNoColumns)
	}
	sheet = sheetName(sheet)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, writeFailed(err, "rename sheet")
	}

	header := make([]any, len(cols))
	for i, col := range cols {
		header[i] = col.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, writeFailed(err, "header")
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, writeFailed(err, "style")
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, writeFailed(err, "style")
	}

	for r, rec := range records {
		row := make([]any, len(cols))
		for i, col := range cols {
			row[i] = cell(rec[col.Field])
		}
		start, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return nil, writeFailed(err, "row").WithDetail("row", r+2)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, writeFailed(err, "buffer")
	}
	return buf.Bytes(), nil
}

// FileName builds "<entity>-<yyyymmdd>.xlsx"
func FileName(entity string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", entity, now.Format("20060102"))
}

func cell(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(x, ", ")
	default:
		return x
	}
}

// sheetName satisfies Excel's 31 character limit and forbidden characters
func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(s))
	if s == "" {
		s = "Sheet1"
	}
	if r := []rune(s); len(r) > 31 {
		s = string(r[:31])
	}
	return s
}

func writeFailed(err error, step string) *errx.Error {
	return ErrRegistry.NewWithCause(CodeWriteFailed, err).WithDetail("step", step)
}
