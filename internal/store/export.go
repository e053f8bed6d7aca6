package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/droplet"
)

type ExportData struct {
	FPS         int           `json:"fps"`
	CycleLength int           `json:"cycle_length"`
	Ticks       int           `json:"ticks"`
	Detaches    int           `json:"detaches"`
	Resets      int           `json:"resets"`
	Samples     []anim.Sample `json:"samples"`
}

func NewExportData(trace *anim.Trace, fps int) ExportData {
	return ExportData{
		FPS:         fps,
		CycleLength: droplet.CycleLength(),
		Ticks:       len(trace.Samples),
		Detaches:    trace.Detaches,
		Resets:      trace.Resets,
		Samples:     trace.Samples,
	}
}

func ExportJSON(path string, trace *anim.Trace, fps int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, trace, fps)
}

func WriteJSON(w io.Writer, trace *anim.Trace, fps int) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(trace, fps))
}

var csvHeader = []string{"tick", "y", "radius", "is_detaching"}

func ExportCSV(path string, trace *anim.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, trace)
}

func WriteCSV(w io.Writer, trace *anim.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range trace.Samples {
		row := []string{
			strconv.Itoa(s.Tick),
			strconv.FormatFloat(s.Y, 'f', -1, 64),
			strconv.FormatFloat(s.Radius, 'f', -1, 64),
			strconv.FormatBool(s.IsDetaching),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV loads a trace written by WriteCSV.
func ReadCSV(r io.Reader) (*anim.Trace, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	trace := anim.NewTrace(0)
	for i, row := range rows {
		if i == 0 || len(row) != len(csvHeader) {
			continue
		}
		tick, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		radius, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		detaching, err := strconv.ParseBool(row[3])
		if err != nil {
			return nil, err
		}
		trace.Samples = append(trace.Samples, anim.Sample{Tick: tick, Y: y, Radius: radius, IsDetaching: detaching})
	}
	return trace, nil
}
