// Package report exports the aggregate output of a session: parameters,
// summary statistics and the decision time histograms. Individual trial
// paths are not exported.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/san-kum/ddmsim/internal/ddm"
	"github.com/san-kum/ddmsim/internal/export"
	"github.com/san-kum/ddmsim/internal/session"
	"github.com/san-kum/ddmsim/internal/stats"
)

type Report struct {
	Generated    time.Time        `json:"generated"`
	Params       ddm.Params       `json:"params"`
	Seed         int64            `json:"seed"`
	Bins         int              `json:"bins"`
	Summary      stats.Summary    `json:"summary"`
	Distribution ddm.Distribution `json:"distribution"`
}

func Build(s *session.Session, seed int64) Report {
	trials := s.Trials()
	return Report{
		Generated:    time.Now().UTC(),
		Params:       s.Params(),
		Seed:         seed,
		Bins:         s.Bins(),
		Summary:      stats.Summarize(trials),
		Distribution: s.Distribution(),
	}
}

func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes one row per histogram bin.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"bin", "rt_start", "rt_end", "upper", "lower"}); err != nil {
		return err
	}

	d := r.Distribution
	edges := d.BinEdges()
	for i := 0; i < d.Bins(); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(edges[i], 'f', 6, 64),
			strconv.FormatFloat(edges[i+1], 'f', 6, 64),
			strconv.Itoa(d.Upper[i]),
			strconv.Itoa(d.Lower[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSVG draws the mirrored histogram.
func WriteSVG(w io.Writer, r Report) error {
	_, err := io.WriteString(w, export.HistogramSVG(r.Distribution, 800, 400))
	return err
}

func Write(w io.Writer, r Report, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, r)
	case "csv":
		return WriteCSV(w, r)
	case "svg":
		return WriteSVG(w, r)
	}
	return fmt.Errorf("unknown format: %s", format)
}
