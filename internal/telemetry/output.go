// Package telemetry writes per-level percolation statistics as CSV.
package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"percolator/internal/percolation"
)

// Row is one CSV record: the statistics of one grid at one level.
type Row struct {
	Seed            int64   `csv:"seed"`
	Width           int     `csv:"width"`
	Height          int     `csv:"height"`
	P               string  `csv:"p"`
	Components      int     `csv:"components"`
	OpenCells       int     `csv:"open_cells"`
	OpenFraction    float64 `csv:"open_fraction"`
	Largest         int     `csv:"largest"`
	LargestFraction float64 `csv:"largest_fraction"`
	MeanSize        float64 `csv:"mean_size"`
	StdDevSize      float64 `csv:"std_size"`
	Spans           bool    `csv:"spans"`
}

// NewRow flattens stats for a grid generated from seed.
func NewRow(seed int64, width, height int, s percolation.Stats) Row {
	return Row{
		Seed:            seed,
		Width:           width,
		Height:          height,
		P:               s.Level.String(),
		Components:      s.Components,
		OpenCells:       s.OpenCells,
		OpenFraction:    s.OpenFraction(),
		Largest:         s.Largest,
		LargestFraction: s.LargestFraction(),
		MeanSize:        s.MeanSize,
		StdDevSize:      s.StdDevSize,
		Spans:           s.Spans,
	}
}

// Writer appends rows to w, writing the header once.
type Writer struct {
	w             io.Writer
	headerWritten bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write appends rows.
func (cw *Writer) Write(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	if !cw.headerWritten {
		if err := gocsv.Marshal(rows, cw.w); err != nil {
			return fmt.Errorf("writing rows: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, cw.w); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return nil
}

// SpanPoint is one point of the spanning-probability curve.
type SpanPoint struct {
	P           string  `csv:"p"`
	Samples     int     `csv:"samples"`
	SpanRate    float64 `csv:"span_rate"`
	MeanLargest float64 `csv:"mean_largest_fraction"`
}

// WriteCurve writes the spanning curve with its own header.
func WriteCurve(w io.Writer, points []SpanPoint) error {
	if err := gocsv.Marshal(points, w); err != nil {
		return fmt.Errorf("writing curve: %w", err)
	}
	return nil
}
