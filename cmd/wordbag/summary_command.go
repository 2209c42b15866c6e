package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordbag/internal/export"
	"wordbag/internal/matrix"
	"wordbag/internal/textutil"
)

type tokenTotal struct {
	Token string `json:"token"`
	Total int    `json:"total"`
}

type periodShift struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Cosine float64 `json:"cosine"`
	TFIDF  float64 `json:"tfidf"`
}

type summaryJSON struct {
	Path       string        `json:"path"`
	Format     string        `json:"format"`
	IndexLabel string        `json:"index_label"`
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	TopTokens  []tokenTotal  `json:"top_tokens"`
	Similarity []periodShift `json:"similarity"`
}

func newSummaryCommand() *cobra.Command {
	var top int
	var format string
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "summary <matrix>",
		Short:       "Summarize a bag-of-words matrix written by build",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(args[0])
			f := export.DetectFormat(path)
			if strings.TrimSpace(format) != "" {
				parsed, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}

			m, err := export.Read(cmd.Context(), f, path)
			if err != nil {
				return err
			}

			rows, cols := m.Dims()
			totals := topTokens(m, top)
			shifts := periodShifts(m)

			if asJSON {
				return writeJSON(cmd, summaryJSON{
					Path:       path,
					Format:     string(f),
					IndexLabel: m.IndexLabel(),
					Rows:       rows,
					Columns:    cols,
					TopTokens:  totals,
					Similarity: shifts,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d periods x %d tokens (index %q)\n", path, rows, cols, m.IndexLabel())
			if len(totals) > 0 {
				fmt.Fprintln(out)
				tokenRows := make([][]string, 0, len(totals))
				for _, t := range totals {
					tokenRows = append(tokenRows, []string{t.Token, strconv.Itoa(t.Total)})
				}
				printRows(out, []string{"Token", "Total"}, tokenRows, []columnAlignment{alignLeft, alignRight})
			}
			if len(shifts) > 0 {
				fmt.Fprintln(out)
				shiftRows := make([][]string, 0, len(shifts))
				for _, s := range shifts {
					shiftRows = append(shiftRows, []string{
						s.From,
						s.To,
						strconv.FormatFloat(s.Cosine, 'f', 3, 64),
						strconv.FormatFloat(s.TFIDF, 'f', 3, 64),
					})
				}
				printRows(out, []string{"From", "To", "Cosine", "TF-IDF"}, shiftRows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight})
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "Number of most frequent tokens to list (0 lists all)")
	cmd.Flags().StringVar(&format, "format", "", "Matrix format (csv or sqlite); detected from the extension when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")
	return cmd
}

// topTokens returns the n tokens with the largest column totals, ties broken
// by column order.
func topTokens(m *matrix.Matrix, n int) []tokenTotal {
	columns := m.Columns()
	sums := m.ColumnTotals()
	totals := make([]tokenTotal, 0, len(columns))
	for j, token := range columns {
		totals = append(totals, tokenTotal{Token: token, Total: sums[j]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// periodShifts compares each period with the one before it, on raw counts
// and on TF-IDF weights across the whole matrix.
func periodShifts(m *matrix.Matrix) []periodShift {
	periods := m.Rows()
	if len(periods) < 2 {
		return nil
	}
	raw := make([]*textutil.Fingerprint, len(periods))
	corpus := textutil.NewCorpus()
	for i, period := range periods {
		counts, _ := m.RowCounts(period)
		raw[i] = textutil.NewFingerprint(counts)
		corpus.Add(raw[i])
	}
	idf := corpus.IDF()
	weighted := make([]*textutil.Fingerprint, len(raw))
	for i, fp := range raw {
		weighted[i] = fp.WithIDF(idf)
	}

	cosine := textutil.ConsecutiveSimilarity(raw)
	tfidf := textutil.ConsecutiveSimilarity(weighted)
	shifts := make([]periodShift, 0, len(cosine))
	for i := range cosine {
		shifts = append(shifts, periodShift{
			From:   periods[i],
			To:     periods[i+1],
			Cosine: cosine[i],
			TFIDF:  tfidf[i],
		})
	}
	return shifts
}
