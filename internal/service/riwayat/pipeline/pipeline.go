// Package pipeline turns the full record list into the page a client displays.
//
// Apply runs four pure stages in order: text filter, bay filter, date sort and
// page window. It performs no I/O; item-level matches are computed elsewhere
// and passed in through Options.Matches.
package pipeline

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// DefaultPageSize is the number of records revealed per page.
const DefaultPageSize = 15

// Options configures one run of the pipeline.
type Options struct {
	Query     string
	Matches   map[uuid.UUID]struct{}
	Bays      map[uuid.UUID][]string
	BayFilter string
	Sort      domain.SortOrder
	PageSize  int
	Pages     int
}

// Result is the display window plus what a client needs to page further.
type Result struct {
	Records []domain.Record
	// Total is the number of records left after filtering.
	Total   int
	HasMore bool
}

// Apply filters, sorts and paginates records. The input slice is not modified.
func Apply(records []domain.Record, opts Options) Result {
	filtered := FilterText(records, opts.Query, opts.Matches)
	filtered = FilterBay(filtered, opts.Bays, opts.BayFilter)
	SortByDate(filtered, opts.Sort)

	limit := Limit(opts.PageSize, opts.Pages)
	page := filtered
	if len(page) > limit {
		page = page[:limit]
	}

	return Result{
		Records: page,
		Total:   len(filtered),
		HasMore: len(filtered) > limit,
	}
}

// Limit is the number of records visible after pages page loads.
func Limit(pageSize, pages int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pages <= 0 {
		pages = 1
	}
	return pageSize * pages
}

// FilterText keeps records matching query on their own fields or whose id is
// in matches. An empty query keeps everything. Always returns a new slice.
func FilterText(records []domain.Record, query string, matches map[uuid.UUID]struct{}) []domain.Record {
	q := domain.NormalizeQuery(query)
	out := make([]domain.Record, 0, len(records))
	for i := range records {
		r := &records[i]
		if q == "" || MatchesHeader(r, q) || MatchesDate(r, q) {
			out = append(out, *r)
			continue
		}
		if _, ok := matches[r.ID]; ok {
			out = append(out, *r)
		}
	}
	return out
}

// MatchesHeader reports whether any scalar field of r contains the folded query.
func MatchesHeader(r *domain.Record, foldedQuery string) bool {
	fields := append([]string{r.Title, r.Location, r.Gardu}, r.RoleFields()...)
	for _, f := range fields {
		if f != "" && strings.Contains(domain.Fold(f), foldedQuery) {
			return true
		}
	}
	return strings.Contains(r.Date, foldedQuery)
}

// FilterBay keeps records whose bay set contains bayTag. Records missing from
// bays have not had their items fetched and are kept. An empty tag keeps all.
func FilterBay(records []domain.Record, bays map[uuid.UUID][]string, bayTag string) []domain.Record {
	if bayTag == "" {
		return records
	}
	out := records[:0:0]
	for _, r := range records {
		tags, known := bays[r.ID]
		if !known || slices.Contains(tags, bayTag) {
			out = append(out, r)
		}
	}
	return out
}

// SortByDate stably sorts records in place. Malformed dates sort as the
// smallest value in either direction of comparison.
func SortByDate(records []domain.Record, order domain.SortOrder) {
	slices.SortStableFunc(records, func(a, b domain.Record) int {
		c := compareDates(&a, &b)
		if order == domain.SortAsc {
			return c
		}
		return -c
	})
}

func compareDates(a, b *domain.Record) int {
	da, okA := a.ParsedDate()
	db, okB := b.ParsedDate()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}
	return da.Compare(db)
}
