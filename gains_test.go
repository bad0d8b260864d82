package dumpsplit

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

var salesHeader = []string{"ASSET NAME", "RECEIVED DATE", "COST BASIS(USD)", "DATE SOLD", "PROCEEDS"}

func TestComputeGains_ShortTerm(t *testing.T) {
	report, err := ComputeGains([][]string{
		salesHeader,
		{"AAPL", "2023-01-01", "100.00", "2023-06-01", "150.00"},
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}
	if len(report.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(report.Records))
	}

	rec := report.Records[0]
	if got := rec.Gain.Amount(); got != "50.00" {
		t.Errorf("Gain = %s, want 50.00", got)
	}
	if rec.DaysHeld != 151 {
		t.Errorf("DaysHeld = %d, want 151", rec.DaysHeld)
	}
	if rec.Term() != "short-term" {
		t.Errorf("Term() = %q, want short-term", rec.Term())
	}
}

func TestComputeGains_LongTerm(t *testing.T) {
	report, err := ComputeGains([][]string{
		salesHeader,
		{"AAPL", "2022-01-01", "100.00", "2023-06-01", "150.00"},
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}

	rec := report.Records[0]
	if rec.DaysHeld != 516 {
		t.Errorf("DaysHeld = %d, want 516", rec.DaysHeld)
	}
	if rec.Term() != "long-term" {
		t.Errorf("Term() = %q, want long-term", rec.Term())
	}
}

func TestGainRecord_TermBoundary(t *testing.T) {
	// Exactly 365 days is still short-term; the period must exceed a year.
	if got := (GainRecord{DaysHeld: 365}).Term(); got != "short-term" {
		t.Errorf("Term(365) = %q, want short-term", got)
	}
	if got := (GainRecord{DaysHeld: 366}).Term(); got != "long-term" {
		t.Errorf("Term(366) = %q, want long-term", got)
	}
}

func TestComputeGains_SkipsUnparsableRows(t *testing.T) {
	report, err := ComputeGains([][]string{
		salesHeader,
		{"AAPL", "2023-01-01", "100.00", "2023-06-01", "150.00"},
		{"TSLA", "invalid-date", "200.00", "2023-06-01", "250.00"},
		{"GOOGL", "2023-01-01", "not-an-amount", "2023-06-01", "250.00"},
		{"MSFT", "2023-01-01", "300.00", "2023-02-01", "310.00"},
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}

	if report.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", report.Skipped)
	}
	if len(report.Records) != 2 {
		t.Errorf("got %d records, want 2", len(report.Records))
	}
	if got := report.Total.Amount(); got != "60.00" {
		t.Errorf("Total = %s, want 60.00", got)
	}
}

func TestComputeGains_NegativeHoldingPeriodSkipped(t *testing.T) {
	report, err := ComputeGains([][]string{
		salesHeader,
		{"AAPL", "2023-06-01", "100.00", "2023-01-01", "150.00"}, // sold before received
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}
	if report.Skipped != 1 || len(report.Records) != 0 {
		t.Errorf("Skipped = %d, Records = %d, want 1 and 0", report.Skipped, len(report.Records))
	}
}

func TestComputeGains_CurrencyNoise(t *testing.T) {
	report, err := ComputeGains([][]string{
		salesHeader,
		{"AAPL", "01/01/2023", "$1,000.00", "06/01/2023", "$1,150.00"},
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}
	if len(report.Records) != 1 {
		t.Fatalf("got %d records, want 1 (currency symbols must be stripped)", len(report.Records))
	}
	if got := report.Records[0].Gain.Amount(); got != "150.00" {
		t.Errorf("Gain = %s, want 150.00", got)
	}
}

func TestComputeGains_MissingColumn(t *testing.T) {
	_, err := ComputeGains([][]string{
		{"ASSET NAME", "PROCEEDS"},
		{"AAPL", "150.00"},
	})
	if err == nil {
		t.Error("ComputeGains() expected an error for missing columns")
	}
}

func TestComputeGains_HeaderCaseInsensitive(t *testing.T) {
	report, err := ComputeGains([][]string{
		{"asset name", "received date", "cost basis(usd)", "date sold", "proceeds"},
		{"AAPL", "2023-01-01", "100.00", "2023-06-01", "150.00"},
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}
	if len(report.Records) != 1 {
		t.Errorf("got %d records, want 1", len(report.Records))
	}
}

func TestWriteGainsSummary(t *testing.T) {
	report, err := ComputeGains([][]string{
		salesHeader,
		{"AAPL", "2020-01-01", "100.00", "2021-01-01", "150.00"},
		{"TSLA", "2020-06-01", "200.00", "2020-12-01", "250.00"},
	})
	if err != nil {
		t.Fatalf("ComputeGains() error = %v", err)
	}

	dir := t.TempDir()
	path, err := WriteGainsSummary(report, dir)
	if err != nil {
		t.Fatalf("WriteGainsSummary() error = %v", err)
	}
	if filepath.Base(path) != "robinhood_sales_gains_summary.csv" {
		t.Errorf("summary file = %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 4 { // header + 2 records + TOTAL
		t.Fatalf("summary has %d rows, want 4", len(records))
	}
	total := records[3]
	if total[0] != "TOTAL" || total[5] != "100.00" {
		t.Errorf("TOTAL row = %v, want total gain 100.00", total)
	}
	// AAPL was held a full leap year: 366 days, long-term.
	if records[1][6] != "366" || records[1][7] != "long-term" {
		t.Errorf("AAPL row = %v, want 366 days long-term", records[1])
	}
	if records[2][7] != "short-term" {
		t.Errorf("TSLA row = %v, want short-term", records[2])
	}
}
