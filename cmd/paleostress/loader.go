package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tectolab/paleostress/fault"
)

// loadFaultData reads a CSV fault table into datum values through the
// fault factory. The loader only maps header-addressed cells onto factory
// records; every measurement check stays in the factory.
func loadFaultData(path string) ([]fault.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	data, err := readFaultTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// readFaultTable parses the schema documented on the invert command:
// header-mapped columns, case-insensitive names, empty cells unset.
func readFaultTable(r io.Reader) ([]fault.Data, error) {
	var cr = csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var cols = make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["kind"]; !ok {
		return nil, errors.New(`header lacks the required "kind" column`)
	}

	var data []fault.Data
	for line := 2; ; line++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		d, err := rowDatum(cols, cells, line)
		if err != nil {
			return nil, err
		}
		data = append(data, d)
	}
	if len(data) == 0 {
		return nil, errors.New("no data rows")
	}
	return data, nil
}

// rowDatum maps one row onto a factory record and builds the datum.
func rowDatum(cols map[string]int, cells []string, line int) (fault.Data, error) {
	var get = func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	var bad = func(col string, err error) error {
		return fmt.Errorf("row %d: column %s: %w", line, col, err)
	}

	var rec = fault.Record{Index: line}
	var err error

	if rec.Plane.Strike, _, err = floatCell(get("strike")); err != nil {
		return nil, bad("strike", err)
	}
	if rec.Plane.Dip, _, err = floatCell(get("dip")); err != nil {
		return nil, bad("dip", err)
	}
	if rec.Plane.DipOctant, err = fault.ParseOctant(get("dip_octant")); err != nil {
		return nil, bad("dip_octant", err)
	}

	if rec.Rake, rec.HasRake, err = floatCell(get("rake")); err != nil {
		return nil, bad("rake", err)
	}
	if rec.StrikeEnd, err = fault.ParseOctant(get("strike_end")); err != nil {
		return nil, bad("strike_end", err)
	}
	if rec.Trend, rec.HasTrend, err = floatCell(get("trend")); err != nil {
		return nil, bad("trend", err)
	}
	if rec.Movement, err = fault.ParseMovement(get("movement")); err != nil {
		return nil, bad("movement", err)
	}

	var trendSet, plungeSet bool
	if rec.LineTrend, trendSet, err = floatCell(get("line_trend")); err != nil {
		return nil, bad("line_trend", err)
	}
	if rec.LinePlunge, plungeSet, err = floatCell(get("line_plunge")); err != nil {
		return nil, bad("line_plunge", err)
	}
	if trendSet != plungeSet {
		return nil, fmt.Errorf("row %d: line_trend and line_plunge must be set together", line)
	}
	rec.HasLine = trendSet

	var s2set, d2set bool
	if rec.Plane2.Strike, s2set, err = floatCell(get("strike2")); err != nil {
		return nil, bad("strike2", err)
	}
	if rec.Plane2.Dip, d2set, err = floatCell(get("dip2")); err != nil {
		return nil, bad("dip2", err)
	}
	if rec.Plane2.DipOctant, err = fault.ParseOctant(get("dip_octant2")); err != nil {
		return nil, bad("dip_octant2", err)
	}
	if rec.Movement2, err = fault.ParseMovement(get("movement2")); err != nil {
		return nil, bad("movement2", err)
	}
	rec.HasPlane2 = s2set || d2set || rec.Plane2.DipOctant != fault.OctantUndefined

	return fault.New(get("kind"), rec)
}

// floatCell parses an optional numeric cell; empty and "-" stay unset.
func floatCell(s string) (v float64, set bool, err error) {
	if s == "" || s == "-" {
		return 0, false, nil
	}
	if v, err = strconv.ParseFloat(s, 64); err != nil {
		return 0, false, err
	}
	return v, true, nil
}
