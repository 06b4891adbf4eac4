package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/katalvlaran/simforest/analysis"
	"github.com/katalvlaran/simforest/core"
)

// ReadCSV reads records from r. The first row is a header.
func ReadCSV(r io.Reader) ([]core.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var recs []core.Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row == 1 {
			continue
		}
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			break
		}
		linesCell := ""
		if len(fields) > 2 {
			linesCell = fields[2]
		}
		lines, err := parseLines(row, linesCell)
		if err != nil {
			return nil, err
		}
		rec := core.Record{LabelA: fields[0], LabelB: fields[1], SharedLines: lines}
		if len(fields) > 3 {
			rec.RefA = fields[3]
		}
		if len(fields) > 4 {
			rec.RefB = fields[4]
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// WriteForestCSV writes the ordered spanning-forest rows.
func WriteForestCSV(w io.Writer, rows []analysis.ForestRow) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"File 1", "Ref 1", "File 2", "Ref 2", "Line Matches"})
	for _, r := range rows {
		_ = cw.Write([]string{r.LabelA, r.RefA, r.LabelB, r.RefB, strconv.Itoa(r.SharedLines)})
	}
	cw.Flush()

	return cw.Error()
}

// WriteGroupsCSV writes the ranked cluster statistics.
func WriteGroupsCSV(w io.Writer, rows []analysis.GroupRow) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Component Index", "Vertices", "Average Similarity", "Component Count"})
	for _, g := range rows {
		_ = cw.Write([]string{
			strconv.Itoa(g.Index),
			g.MemberList(),
			strconv.FormatFloat(g.Similarity, 'f', 1, 64),
			strconv.Itoa(g.Count),
		})
	}
	cw.Flush()

	return cw.Error()
}
