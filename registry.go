package dumpsplit

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Kind describes one recognizable dataset kind inside a dump: its name (which
// also names the output file), its output rendering, and the recognizer that
// detects its header line.
type Kind struct {
	Name   string
	Output OutputKind

	// Exactly one of the two recognizers is set: a case-insensitive pattern
	// searched anywhere in the line, or a line prefix.
	header *regexp.Regexp
	prefix string
}

// Match reports whether line opens a section of this kind.
// Matching is case-insensitive.
func (k Kind) Match(line string) bool {
	if k.header != nil {
		return k.header.MatchString(line)
	}
	return strings.HasPrefix(strings.ToLower(line), k.prefix)
}

// Recognizer returns a human readable form of the kind's recognizer.
func (k Kind) Recognizer() string {
	if k.header != nil {
		return k.header.String()
	}
	return fmt.Sprintf("prefix %q", k.prefix)
}

// SalesKind names the kind whose rows feed the capital-gains computation.
const SalesKind = "robinhood_sales"

// kinds is the fixed registry of recognizable section kinds.
// Registration order is the match priority: the first matching kind wins.
var kinds = []Kind{
	{
		Name:   SalesKind,
		Output: Tabular,
		header: regexp.MustCompile(`(?i)ASSET NAME,RECEIVED DATE,COST BASIS\(USD\),DATE SOLD,PROCEEDS`),
	},
	{
		Name:   "personal_finance",
		Output: Tabular,
		header: regexp.MustCompile(`(?i)Date,Original Date,Account Type,Account Name,Account Number,Institution Name`),
	},
	{
		Name:   "crypto_movements",
		Output: Tabular,
		header: regexp.MustCompile(`(?i)Transaction,Type,Input Currency,Input Amount,Output Currency`),
	},
	{
		Name:   "btc_daily_prices",
		Output: Tabular,
		header: regexp.MustCompile(`(?i)Start,End,Open,High,Low,Close,Volume,Market Cap`),
	},
	{
		Name:   "logic_app_json",
		Output: Structured,
		prefix: `{"$schema"`,
	},
	{
		Name:   "scriptable_js",
		Output: Structured,
		prefix: `// variables used by scriptable.`,
	},
}

// Kinds returns the registered kinds, in priority order.
func Kinds() []Kind { return slices.Clone(kinds) }

// LookupKind returns the registered kind with that name.
func LookupKind(name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// matchKind returns the first registered kind whose recognizer matches line.
func matchKind(line string) (Kind, bool) {
	for _, k := range kinds {
		if k.Match(line) {
			return k, true
		}
	}
	return Kind{}, false
}
