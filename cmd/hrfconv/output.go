package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// series is one named column of output.
type series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable prints one row per sample index with a column per series.
// Shorter series leave their cells blank.
func writeTable(w io.Writer, cols []series) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := make([]string, 0, len(cols)+1)
	header = append(header, "index")
	rows := 0
	for _, c := range cols {
		header = append(header, c.Name)
		rows = max(rows, len(c.Values))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	cells := make([]string, len(cols)+1)
	for i := 0; i < rows; i++ {
		cells[0] = strconv.Itoa(i)
		for j, c := range cols {
			cells[j+1] = ""
			if i < len(c.Values) {
				cells[j+1] = strconv.FormatFloat(c.Values[i], 'g', 6, 64)
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	return tw.Flush()
}
