package services

import (
	"bytes"
	"testing"

	"price_tag_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportTagSheet(t *testing.T) {
	pool := models.NewDefaultTagPool()
	pool[3].Brand = "ULTIMA"

	buf, err := ExportTagSheet(pool)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), TagSheetName)
	rows, err := f.GetRows(TagSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "product_description", rows[0][0])
	assert.Equal(t, "ULTIMA", rows[4][1])

	lastCol, err := excelize.ColumnNumberToName(len(models.TagFields))
	require.NoError(t, err)
	styleID, err := f.GetCellStyle(TagSheetName, lastCol+"1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold, "header row is bold up to the last field column")

	width, err := f.GetColWidth(TagSheetName, lastCol)
	require.NoError(t, err)
	assert.Equal(t, 28.0, width)
}

func TestTagSheetRoundTrip(t *testing.T) {
	pool := models.NewDefaultTagPool()
	pool[0].InstallmentsText = "DOS\nLINEAS"
	pool[2].ListPrice = "5.500"

	buf, err := ExportTagSheet(pool)
	require.NoError(t, err)

	records, err := ImportTagSheet(buf)
	require.NoError(t, err)
	assert.Equal(t, pool, records)
}

func TestImportTagSheetColumnsByName(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"list_price", "Brand", "notes"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"10.000", "<b>ACME</b>", "ignored"})
	f.SetSheetRow("Sheet1", "A3", &[]interface{}{"", "", ""})
	f.SetSheetRow("Sheet1", "A4", &[]interface{}{"20.000", "OTRA", ""})

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	records, err := ImportTagSheet(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ACME", records[0].Brand)
	assert.Equal(t, "10.000", records[0].ListPrice)
	assert.Empty(t, records[0].Code)
	assert.Equal(t, 1, records[1].ID)
	assert.Equal(t, "OTRA", records[1].Brand)
}

func TestImportTagSheetLimitsToPool(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"brand"})
	for i := 2; i <= 8; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i)
		f.SetCellValue("Sheet1", cell, "B")
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	records, err := ImportTagSheet(&buf)
	require.NoError(t, err)
	assert.Len(t, records, models.TagPoolSize)
}

func TestImportTagSheetInvalid(t *testing.T) {
	_, err := ImportTagSheet(bytes.NewReader([]byte("not a workbook")))
	assert.ErrorIs(t, err, ErrTagSheet)

	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"unknown"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"x"})
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	_, err = ImportTagSheet(&buf)
	assert.ErrorIs(t, err, ErrTagSheet)

	f = excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"brand"})
	buf.Reset()
	require.NoError(t, f.Write(&buf))
	_, err = ImportTagSheet(&buf)
	assert.ErrorIs(t, err, ErrTagSheet)
}
