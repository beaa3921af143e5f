// Command rvr1 drafts the RVR1 jeans pattern for a set of body measurements
// and prints the parts as JSON: every point, every path as point names and as
// SVG path data, seam lengths, enclosed areas and titles.
//
// Measurements default to the reference body. They can be read from a JSON
// file with -measurements and overridden one by one with flags:
//
//	rvr1 -measurements body.json -inseamLength 800 > rvr1.json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/riversidedenim/rvr1"
	"github.com/riversidedenim/rvr1/pattern"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "rvr1:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rvr1", flag.ContinueOnError)
	fs.SetOutput(stderr)

	ref := rvr1.ReferenceMeasurements()
	flags := make(map[string]*float64)
	for _, name := range rvr1.RequiredMeasurements() {
		flags[name] = fs.Float64(name, ref[name], "measurement in mm")
	}
	var (
		file      = fs.String("measurements", "", "JSON `file` mapping measurement names to lengths in mm")
		sample    = fs.Bool("sample", false, "draft the geometry only, without titles")
		precision = fs.Int("precision", 2, "maximum number of decimals in coordinates, 0 for full precision")
		debug     = fs.Bool("debug", false, "log drafting steps to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	if *debug {
		pattern.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer pattern.SetLogger(nil)
	}

	m := ref
	if *file != "" {
		fromFile, err := readMeasurements(*file)
		if err != nil {
			return err
		}
		for name, v := range fromFile {
			m[name] = v
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if v, ok := flags[f.Name]; ok {
			m[f.Name] = *v
		}
	})

	draft := rvr1.Draft
	if *sample {
		draft = rvr1.Sample
	}
	pat, err := draft(m)
	if err != nil {
		return err
	}
	rep, err := newReport(pat, m, *precision)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// readMeasurements reads a JSON object of measurements. Names the draft
// doesn't use are rejected, as they are most likely typos.
func readMeasurements(path string) (pattern.Measurements, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m pattern.Measurements
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("reading measurements from %s: %w", path, err)
	}
	known := rvr1.RequiredMeasurements()
	for _, name := range m.Names() {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("reading measurements from %s: unknown measurement %q", path, name)
		}
	}
	return m, nil
}
