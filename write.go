package dumpsplit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// WrittenFile describes one output file produced by a run.
type WrittenFile struct {
	Kind string
	Path string
	Rows int    // data rows for tabular output, raw lines for structured output
	Note string // optional descriptor, e.g. the schema of a structured section
}

// RunReport is the user-visible outcome of one run: files written, rows
// dropped per section, and the gains computation when it ran.
type RunReport struct {
	Files        []WrittenFile
	SkippedRows  map[string]int
	RawFallbacks []string     // structured kinds whose content failed to parse and was written raw
	Gains        *GainsReport // nil unless the sales section was populated
}

// WriteSections renders every accumulated section into its own file under
// dir: tabular kinds as cleaned CSV, structured kinds as indented JSON.
//
// Row-level problems degrade gracefully: a tabular row with the wrong field
// count is dropped and counted, and a structured section that fails to parse
// is written out raw instead of failing the run.
func WriteSections(sections *Sections, dir string) (*RunReport, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output directory %q: %w: %w", dir, ErrOutputWrite, err)
	}

	report := &RunReport{SkippedRows: make(map[string]int)}
	for sec := range sections.All() {
		if len(sec.Lines) == 0 {
			continue
		}
		path := filepath.Join(dir, sec.Kind.Name+sec.Kind.Output.Ext())

		var file WrittenFile
		var err error
		switch sec.Kind.Output {
		case Tabular:
			file, err = writeTabular(sec, path, report)
		case Structured:
			file, err = writeStructured(sec, path, report)
		}
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, file)
	}
	return report, nil
}

// writeTabular writes a tabular section as a CSV file with trimmed fields.
func writeTabular(sec *Section, path string, report *RunReport) (WrittenFile, error) {
	records, skipped := cleanTabular(sec.Lines)
	if skipped > 0 {
		report.SkippedRows[sec.Kind.Name] += skipped
		log.Printf("warning: section %q: dropped %d malformed row(s)", sec.Kind.Name, skipped)
	}

	f, err := os.Create(path)
	if err != nil {
		return WrittenFile{}, fmt.Errorf("cannot create %q: %w: %w", path, ErrOutputWrite, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return WrittenFile{}, fmt.Errorf("cannot write %q: %w: %w", path, ErrOutputWrite, err)
	}

	rows := len(records)
	if rows > 0 {
		rows-- // don't count the column-name line
	}
	return WrittenFile{Kind: sec.Kind.Name, Path: path, Rows: rows}, nil
}

// writeStructured writes a structured section as indented JSON, falling back
// to the raw buffered text when it does not parse.
func writeStructured(sec *Section, path string, report *RunReport) (WrittenFile, error) {
	raw := strings.Join(sec.Lines, "\n")
	file := WrittenFile{Kind: sec.Kind.Name, Path: path, Rows: len(sec.Lines)}

	data := []byte(raw)
	var v any
	if err := json.Unmarshal(data, &v); err == nil {
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return WrittenFile{}, fmt.Errorf("cannot serialize section %q: %w", sec.Kind.Name, err)
		}
		file.Note = describeStructured(v)
	} else {
		log.Printf("warning: section %q does not parse, writing raw text: %v", sec.Kind.Name, err)
		report.RawFallbacks = append(report.RawFallbacks, sec.Kind.Name)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return WrittenFile{}, fmt.Errorf("cannot write %q: %w: %w", path, ErrOutputWrite, err)
	}
	return file, nil
}

// cleanTabular parses the buffered lines of a tabular section and returns the
// cleaned records, header first. Fields are whitespace-trimmed; rows whose
// field count differs from the header's are dropped and counted.
func cleanTabular(lines []string) (records [][]string, skipped int) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	width := -1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			skipped++
			continue
		}
		records = append(records, row)
	}
	return records, skipped
}

// describeStructured extracts a short descriptor from a parsed structured
// section, when the content declares one.
func describeStructured(v any) string {
	jval, err := jsonpath.Get(`$["$schema"]`, v)
	if err != nil {
		return ""
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	if s, ok := jval.(string); ok {
		return "schema: " + s
	}
	return ""
}
