package dumpsplit

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// Sentinel errors for the file-level failures that abort a run. Row and
// section level problems never do: they degrade gracefully and are counted
// in the RunReport.
var (
	// ErrInputNotFound reports that the dump file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrOutputWrite reports that an output file or directory cannot be written.
	ErrOutputWrite = errors.New("cannot write output")
)

// Run is the single entry point: it splits the dump at inputPath into one
// output file per detected section kind under outputDir, and derives a
// capital-gains summary when the dump contains a populated sales section.
//
// A dump with no recognized header is valid input: the run succeeds and the
// report lists zero files.
func Run(inputPath, outputDir string) (*RunReport, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot open dump %q: %w", inputPath, ErrInputNotFound)
		}
		return nil, fmt.Errorf("cannot open dump %q: %w", inputPath, err)
	}
	defer f.Close()

	sections, err := Split(f)
	if err != nil {
		return nil, fmt.Errorf("cannot split dump %q: %w", inputPath, err)
	}

	report, err := WriteSections(sections, outputDir)
	if err != nil {
		return nil, err
	}

	if sales := sections.Get(SalesKind); sales != nil {
		// Derive gains from the same cleaned records that were written out.
		records, _ := cleanTabular(sales.Lines)
		if len(records) > 1 {
			gains, err := ComputeGains(records)
			if err != nil {
				// A sales section without the expected columns is a section
				// level problem, not a run failure.
				log.Printf("warning: skipping gains computation: %v", err)
				return report, nil
			}
			path, err := WriteGainsSummary(gains, outputDir)
			if err != nil {
				return nil, err
			}
			report.Gains = gains
			report.Files = append(report.Files, WrittenFile{
				Kind: SalesKind + "_gains_summary",
				Path: path,
				Rows: len(gains.Records),
			})
		}
	}
	return report, nil
}
