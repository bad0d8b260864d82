package dumpsplit

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/dumpsplit/date"
	"github.com/shopspring/decimal"
)

// salesCurrency is the currency of the sales section's amounts.
const salesCurrency = "USD"

// longTermDays is the holding period, in days, beyond which a gain is long-term.
const longTermDays = 365

// GainRecord is the derived capital-gains row for one sale. It is computed
// once and never mutated afterward.
type GainRecord struct {
	Asset     string
	Received  date.Date
	Sold      date.Date
	CostBasis Money
	Proceeds  Money
	Gain      Money
	DaysHeld  int
}

// Term returns the holding-period classification of the record.
func (g GainRecord) Term() string {
	if g.DaysHeld > longTermDays {
		return "long-term"
	}
	return "short-term"
}

// GainsReport holds the derived gain records of a sales section, the total
// gain over the valid rows, and the number of rows that had to be skipped.
type GainsReport struct {
	Records []GainRecord
	Total   Money
	Skipped int
}

// ComputeGains derives one gain record per sales row. Columns are located by
// header name, case-insensitively. A row with an unparsable date or amount,
// or a negative holding period, is skipped and counted; it never aborts the
// computation for the remaining rows.
func ComputeGains(records [][]string) (*GainsReport, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("sales section has no header row")
	}
	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(name)] = i
	}
	col := func(name string) (int, error) {
		i, ok := columns[name]
		if !ok {
			return 0, fmt.Errorf("sales section is missing column %q", name)
		}
		return i, nil
	}

	var err error
	var asset, received, cost, sold, proceeds int
	if asset, err = col("asset name"); err != nil {
		return nil, err
	}
	if received, err = col("received date"); err != nil {
		return nil, err
	}
	if cost, err = col("cost basis(usd)"); err != nil {
		return nil, err
	}
	if sold, err = col("date sold"); err != nil {
		return nil, err
	}
	if proceeds, err = col("proceeds"); err != nil {
		return nil, err
	}

	report := &GainsReport{Total: M(decimal.Zero, salesCurrency)}
	for _, row := range records[1:] {
		rec, err := newGainRecord(row, asset, received, cost, sold, proceeds)
		if err != nil {
			report.Skipped++
			log.Printf("warning: skipping sales row %q: %v", strings.Join(row, ","), err)
			continue
		}
		report.Records = append(report.Records, rec)
		report.Total = report.Total.Add(rec.Gain)
	}
	return report, nil
}

// newGainRecord parses one sales row into its derived record.
func newGainRecord(row []string, asset, received, cost, sold, proceeds int) (GainRecord, error) {
	rec := GainRecord{Asset: row[asset]}

	var err error
	if rec.Received, err = date.Parse(row[received]); err != nil {
		return GainRecord{}, err
	}
	if rec.Sold, err = date.Parse(row[sold]); err != nil {
		return GainRecord{}, err
	}
	if rec.CostBasis, err = ParseMoney(row[cost], salesCurrency); err != nil {
		return GainRecord{}, err
	}
	if rec.Proceeds, err = ParseMoney(row[proceeds], salesCurrency); err != nil {
		return GainRecord{}, err
	}

	rec.Gain = rec.Proceeds.Sub(rec.CostBasis)
	rec.DaysHeld = rec.Sold.Sub(rec.Received)
	if rec.DaysHeld < 0 {
		return GainRecord{}, fmt.Errorf("sold %s before received %s", rec.Sold, rec.Received)
	}
	return rec, nil
}

// gainsHeader is the column-name line of the gains summary file.
var gainsHeader = []string{"ASSET NAME", "RECEIVED DATE", "COST BASIS(USD)", "DATE SOLD", "PROCEEDS", "GAIN", "DAYS HELD", "TERM"}

// WriteGainsSummary writes the gains report as a CSV file under dir, one row
// per record plus a trailing TOTAL row, and returns the file path.
func WriteGainsSummary(report *GainsReport, dir string) (string, error) {
	path := filepath.Join(dir, SalesKind+"_gains_summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create %q: %w: %w", path, ErrOutputWrite, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{gainsHeader}
	for _, rec := range report.Records {
		rows = append(rows, []string{
			rec.Asset,
			rec.Received.String(),
			rec.CostBasis.Amount(),
			rec.Sold.String(),
			rec.Proceeds.Amount(),
			rec.Gain.Amount(),
			strconv.Itoa(rec.DaysHeld),
			rec.Term(),
		})
	}
	rows = append(rows, []string{"TOTAL", "", "", "", "", report.Total.Amount(), "", ""})
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("cannot write %q: %w: %w", path, ErrOutputWrite, err)
	}
	return path, nil
}
