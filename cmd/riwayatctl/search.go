package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat"
)

func searchCmd(open opener) *cobra.Command {
	var (
		query string
		bay   string
		order string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search records",
		Long: `Search records the way the logbook screen does: the query matches
record headers, dates ("23 mar") and action items; --bay keeps records
carrying that bay; results are ordered by date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sort := domain.SortOrder(strings.ToLower(order))
			if !sort.IsValid() {
				return fmt.Errorf("invalid --sort %q (want asc or desc)", order)
			}

			ctx := cmd.Context()
			b, scope, err := open(ctx)
			if err != nil {
				return err
			}
			defer b.close()

			s, err := b.sessions.Get(ctx, scope)
			if err != nil {
				return fmt.Errorf("load records: %w", err)
			}

			view, err := runSearch(ctx, s, query, bay, sort, limit)
			if err != nil {
				return err
			}

			printView(cmd.OutOrStdout(), view, limit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	cmd.Flags().StringVar(&bay, "bay", "", "only records carrying this bay")
	cmd.Flags().StringVar(&order, "sort", string(domain.SortDesc), "date order: asc or desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records to print (0 for all)")

	return cmd
}

// runSearch applies the filters to a loaded session and pages until limit
// records are visible or the list is exhausted.
func runSearch(ctx context.Context, s *riwayat.Session, query, bay string, sort domain.SortOrder, limit int) (riwayat.View, error) {
	if _, err := s.SetSortOrder(sort); err != nil {
		return riwayat.View{}, err
	}
	if _, err := s.SetBayFilter(bay); err != nil {
		return riwayat.View{}, err
	}
	if _, err := s.SetQuery(query); err != nil {
		return riwayat.View{}, err
	}

	view, err := waitSearch(ctx, s)
	if err != nil {
		return view, err
	}

	for view.HasMore && (limit <= 0 || len(view.Records) < limit) {
		if view, err = s.LoadMore(); err != nil {
			return view, err
		}
	}
	return view, nil
}

func waitSearch(ctx context.Context, s *riwayat.Session) (riwayat.View, error) {
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	for {
		view := s.View()
		if !view.Searching {
			return view, nil
		}
		select {
		case <-ctx.Done():
			return view, ctx.Err()
		case <-ticker.C:
		}
	}
}

func printView(out io.Writer, view riwayat.View, limit int) {
	records := view.Records
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No records found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tGARDU\tTITLE\tLOCATION\tBAYS\tID")
	fmt.Fprintln(w, "----\t-----\t-----\t--------\t----\t--")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date,
			r.Gardu,
			r.Title,
			r.Location,
			strings.Join(view.Bays[r.ID], ", "),
			r.ID,
		)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d of %d records", len(records), view.Total)
	if view.Query != "" {
		fmt.Fprintf(out, ", query %q", view.Query)
	}
	if view.BayFilter != "" {
		fmt.Fprintf(out, ", bay %q", view.BayFilter)
	}
	fmt.Fprintf(out, ", %s\n", view.Sort)
}
