package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
)

const (
	reportSheet = "Sheet1"
	linkColor   = "0000FF"
	minColWidth = 10
)

func readXLSX(path string) ([]core.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sheet, err)
	}

	var recs []core.Record
	for i := 1; i < len(rows); i++ {
		cells := rows[i]
		row := i + 1
		if len(cells) < 2 || cells[0] == "" || cells[1] == "" {
			break
		}
		linesCell := ""
		if len(cells) > 2 {
			linesCell = cells[2]
		}
		lines, err := parseLines(row, linesCell)
		if err != nil {
			return nil, err
		}
		refA, err := hyperlink(f, sheet, 1, row)
		if err != nil {
			return nil, err
		}
		refB, err := hyperlink(f, sheet, 2, row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, core.Record{
			LabelA:      cells[0],
			LabelB:      cells[1],
			SharedLines: lines,
			RefA:        refA,
			RefB:        refB,
		})
	}

	return recs, nil
}

func hyperlink(f *excelize.File, sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	ok, link, err := f.GetCellHyperLink(sheet, cell)
	if err != nil || !ok {
		return "", err
	}

	return link, nil
}

// sheetWriter tracks column widths while rows are written, since excelize has
// no auto-fit.
type sheetWriter struct {
	f      *excelize.File
	widths map[int]int
	link   int
}

func newSheetWriter() (*sheetWriter, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Underline: "single", Color: linkColor},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	return &sheetWriter{f: f, widths: make(map[int]int), link: style}, nil
}

func (w *sheetWriter) set(col, row int, v any) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	if err := w.f.SetCellValue(reportSheet, cell, v); err != nil {
		return "", err
	}
	if n := len(fmt.Sprint(v)) + 2; n > w.widths[col] {
		w.widths[col] = n
	}

	return cell, nil
}

// setLink writes a label cell styled as a link, hyperlinked when ref is set.
func (w *sheetWriter) setLink(col, row int, label, ref string) error {
	cell, err := w.set(col, row, label)
	if err != nil {
		return err
	}
	if ref != "" {
		if err := w.f.SetCellHyperLink(reportSheet, cell, ref, "External"); err != nil {
			return err
		}
	}

	return w.f.SetCellStyle(reportSheet, cell, cell, w.link)
}

func (w *sheetWriter) save(path string) error {
	defer w.f.Close()
	for col, width := range w.widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(reportSheet, name, name, float64(max(width, minColWidth))); err != nil {
			return err
		}
	}

	return w.f.SaveAs(path)
}

func (w *sheetWriter) header(titles ...string) error {
	for i, t := range titles {
		if _, err := w.set(i+1, 1, t); err != nil {
			return err
		}
	}

	return nil
}

func writeForestXLSX(path string, rows []analysis.ForestRow) error {
	w, err := newSheetWriter()
	if err != nil {
		return err
	}
	if err := w.header("File 1", "File 2", "Line Matches"); err != nil {
		w.f.Close()
		return err
	}
	for i, r := range rows {
		row := i + 2
		if err := w.setLink(1, row, r.LabelA, r.RefA); err != nil {
			w.f.Close()
			return err
		}
		if err := w.setLink(2, row, r.LabelB, r.RefB); err != nil {
			w.f.Close()
			return err
		}
		if _, err := w.set(3, row, r.SharedLines); err != nil {
			w.f.Close()
			return err
		}
	}

	return w.save(path)
}

func writeGroupsXLSX(path string, rows []analysis.GroupRow) error {
	w, err := newSheetWriter()
	if err != nil {
		return err
	}
	if err := w.header("Component Index", "Vertices", "Average Similarity", "Component Count"); err != nil {
		w.f.Close()
		return err
	}
	for i, g := range rows {
		row := i + 2
		for col, v := range []any{g.Index, g.MemberList(), g.Similarity, g.Count} {
			if _, err := w.set(col+1, row, v); err != nil {
				w.f.Close()
				return err
			}
		}
	}

	return w.save(path)
}
