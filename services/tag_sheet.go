package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"price_tag_app_go/models"

	"github.com/xuri/excelize/v2"
)

// TagSheetName is the worksheet that holds one tag per row
const TagSheetName = "Etiquetas"

var ErrTagSheet = errors.New("invalid tag workbook")

// ExportTagSheet writes the pool to a workbook: a header row with the field
// names followed by one row per record
func ExportTagSheet(records []models.TagRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TagSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(models.TagFields))
	for i, field := range models.TagFields {
		header[i] = field.Name
	}
	if err := f.SetSheetRow(TagSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(models.TagFields))
	if err != nil {
		return nil, fmt.Errorf("failed to name last column: %w", err)
	}
	if err := f.SetCellStyle(TagSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(TagSheetName, "A", lastCol, 28); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, record := range records {
		row := make([]interface{}, len(models.TagFields))
		for j, field := range models.TagFields {
			row[j] = field.Value(record)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to locate row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(TagSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// ImportTagSheet reads records from the first worksheet. Columns are matched
// by header name, so they may come in any order; unknown columns are
// ignored and missing ones leave the field empty. Blank rows are skipped and
// at most models.TagPoolSize records are returned.
func ImportTagSheet(r io.Reader) ([]models.TagRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTagSheet, err)
	}
	defer f.Close()

	sheet := TagSheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTagSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrTagSheet)
	}

	columns := make(map[int]models.TagField)
	for i, name := range rows[0] {
		for _, field := range models.TagFields {
			if strings.EqualFold(strings.TrimSpace(name), field.Name) {
				columns[i] = field
			}
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no known columns in header", ErrTagSheet)
	}

	var records []models.TagRecord
	for _, row := range rows[1:] {
		if len(records) == models.TagPoolSize {
			break
		}
		if isBlankRow(row) {
			continue
		}
		record := models.TagRecord{ID: len(records)}
		for i, value := range row {
			if field, ok := columns[i]; ok {
				field.Set(&record, NormalizeTagText(value))
			}
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no tag rows", ErrTagSheet)
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
