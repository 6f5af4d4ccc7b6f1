package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// shortMonths are the id-ID abbreviated month names used in list views.
var shortMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// monthVariants lists the spellings operators type for each month, already
// folded to lower case. English abbreviations appear where they differ.
var monthVariants = [12][]string{
	{"januari", "jan"},
	{"februari", "feb"},
	{"maret", "mar"},
	{"april", "apr"},
	{"mei", "may"},
	{"juni", "jun"},
	{"juli", "jul"},
	{"agustus", "agu", "agt"},
	{"september", "sep"},
	{"oktober", "okt", "oct"},
	{"november", "nov"},
	{"desember", "des", "dec"},
}

// FormatShortDate renders d the way record lists show it: "23 Mar 2026".
func FormatShortDate(d time.Time) string {
	return d.Format("02") + " " + shortMonths[d.Month()-1] + " " + strconv.Itoa(d.Year())
}

// MatchesDate reports whether every token of the folded query matches the
// record date by at least one criterion: substring of the short formatted date,
// the day of month, substring of the year, or a month name variant in either
// direction. Malformed dates never match.
func MatchesDate(r *domain.Record, foldedQuery string) bool {
	d, ok := r.ParsedDate()
	if !ok {
		return false
	}
	tokens := strings.Fields(foldedQuery)
	if len(tokens) == 0 {
		return false
	}

	formatted := domain.Fold(FormatShortDate(d))
	day := strconv.Itoa(d.Day())
	year := strconv.Itoa(d.Year())
	variants := monthVariants[d.Month()-1]

	for _, tok := range tokens {
		if !tokenMatchesDate(tok, formatted, day, year, variants) {
			return false
		}
	}
	return true
}

func tokenMatchesDate(tok, formatted, day, year string, variants []string) bool {
	if strings.Contains(formatted, tok) || tok == day || strings.Contains(year, tok) {
		return true
	}
	for _, v := range variants {
		if strings.Contains(v, tok) || strings.Contains(tok, v) {
			return true
		}
	}
	return false
}
