package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
)

// writeInputXLSX builds a workbook shaped like the upstream export: a header,
// three rows with hyperlinks on some labels, a blank row, then a stray row.
func writeInputXLSX(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	s := "Sheet1"
	rows := [][]any{
		{"File 1", "File 2", "Lines Matched"},
		{"Item10(80%)", "Item11(60%)", 10},
		{"Item11(55%)", "Item12(40%)", 5},
		{"Item10(90%)", "Item12(95%)", 20},
		{},
		{"Item99(1%)", "Item98(1%)", 1},
	}
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(s, cell, &r))
	}
	require.NoError(t, f.SetCellHyperLink(s, "A2", "https://example.org/10", "External"))
	require.NoError(t, f.SetCellHyperLink(s, "B4", "https://example.org/12", "External"))
	require.NoError(t, f.SaveAs(path))
}

func TestReadRecords_XLSX(t *testing.T) {
	p := filepath.Join(t.TempDir(), "1-Input.xlsx")
	writeInputXLSX(t, p)

	recs, err := ReadRecords(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, recs, 3)
	assert.Equal(t, core.Record{
		LabelA: "Item10(80%)", LabelB: "Item11(60%)", SharedLines: 10, RefA: "https://example.org/10",
	}, recs[0])
	assert.Equal(t, 5, recs[1].SharedLines)
	assert.Empty(t, recs[1].RefA)
	assert.Equal(t, "https://example.org/12", recs[2].RefB)
}

func TestReadCSV(t *testing.T) {
	in := "label_a,label_b,shared_lines,ref_a,ref_b\n" +
		"Item10(80%),Item11(60%),10,http://a,\n" +
		"Item11(55%),Item12(40%), 5.0\n" +
		",,\n" +
		"Item1(1%),Item2(2%),3\n"
	recs, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "http://a", recs[0].RefA)
	assert.Empty(t, recs[0].RefB)
	assert.Equal(t, 5, recs[1].SharedLines)
}

func TestReadCSV_BadLines(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("h\nA1(1%),B2(2%),many\n"))
	assert.ErrorIs(t, err, ErrBadRow)
	assert.ErrorContains(t, err, "row 2")
}

func TestReadCSV_MissingLinesColumn(t *testing.T) {
	in := "hdr\n" +
		"A1(10%),B2(20%),3\n" +
		"A1(50%),C3(60%)\n" +
		"C3(70%),D4(80%),9\n"
	recs, err := ReadCSV(strings.NewReader(in))
	assert.ErrorIs(t, err, ErrBadRow)
	assert.ErrorContains(t, err, "row 3")
	assert.Nil(t, recs)
}

func TestReadCSV_StopsAtBlankLabel(t *testing.T) {
	recs, err := ReadCSV(strings.NewReader("hdr\nA1(10%),B2(20%),3\nA1(50%)\nC3(70%),D4(80%),9\n"))
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b/C.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = FormatOf("notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadRecords(context.Background(), "notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("h\nA1(10%),B2(20%),4\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "~$a.xlsx"), []byte("lock"), 0o600))
	writeInputXLSX(t, filepath.Join(dir, "a.xlsx"))

	ds, err := Glob(dir)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "a", ds[0].Name)
	assert.Equal(t, "b", ds[1].Name)

	recs, err := ds[1].Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Name:   "easy/1",
		Method: "prim",
		Forest: []analysis.ForestRow{
			{LabelA: "Item10 (90%)", LabelB: "Item12 (95%)", RefB: "https://example.org/12", SharedLines: 20},
			{LabelA: "Item10 (80%)", RefA: "https://example.org/10", LabelB: "Item11 (60%)", SharedLines: 10},
		},
		Groups: []analysis.GroupRow{
			{Index: 1, Members: []int{10, 11, 12}, Similarity: 70, Count: 3},
			{Index: 2, Members: []int{4, 5}, Similarity: 12.5, Count: 2},
		},
	}
}

func TestWriteReport_XLSX(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteReport(dir, FormatXLSX, sampleReport())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "easy_1-MST-prim.xlsx"),
		filepath.Join(dir, "easy_1-STAT.xlsx"),
	}, paths)

	f, err := excelize.OpenFile(paths[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"File 1", "File 2", "Line Matches"},
		{"Item10 (90%)", "Item12 (95%)", "20"},
		{"Item10 (80%)", "Item11 (60%)", "10"},
	}, rows)
	ok, link, err := f.GetCellHyperLink("Sheet1", "B2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://example.org/12", link)
	ok, _, err = f.GetCellHyperLink("Sheet1", "A2")
	require.NoError(t, err)
	assert.False(t, ok)

	g, err := excelize.OpenFile(paths[1])
	require.NoError(t, err)
	defer g.Close()
	rows, err = g.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "10, 11, 12", "70", "3"}, rows[1])
	assert.Equal(t, []string{"2", "4, 5", "12.5", "2"}, rows[2])
}

func TestWriteReport_CSV(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteReport(dir, FormatCSV, sampleReport())
	require.NoError(t, err)

	forest, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "File 1,Ref 1,File 2,Ref 2,Line Matches\n"+
		"Item10 (90%),,Item12 (95%),https://example.org/12,20\n"+
		"Item10 (80%),https://example.org/10,Item11 (60%),,10\n", string(forest))

	stat, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "Component Index,Vertices,Average Similarity,Component Count\n"+
		"1,\"10, 11, 12\",70.0,3\n"+
		"2,\"4, 5\",12.5,2\n", string(stat))

	_, err = WriteReport(dir, "pdf", sampleReport())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteGroupsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGroupsCSV(&buf, nil))
	assert.Equal(t, "Component Index,Vertices,Average Similarity,Component Count\n", buf.String())
}
