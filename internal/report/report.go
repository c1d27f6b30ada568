// Package report renders the network analysis as plain text.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sanonone/socialgraph/pkg/dataset"
	"github.com/sanonone/socialgraph/pkg/engine"
)

// Options selects what goes into the report.
type Options struct {
	RunID             string
	TopK              int
	SuggestFor        string
	SeparationPairs   []dataset.Edge
	ListUsers         bool
	PageRankDamping   float64
	PageRankTolerance float64
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#00FF99"))

// errWriter remembers the first write error so sections can print freely.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) section(title string) {
	ew.printf("\n%s\n", titleStyle.Render(title))
}

// Write renders every section of the analysis report for eng to w.
func Write(w io.Writer, eng *engine.Engine, opts Options) error {
	ew := &errWriter{w: w}

	if opts.RunID != "" {
		ew.printf("run %s\n", opts.RunID)
	}

	if opts.ListUsers {
		ew.section("NETWORK USER INFO")
		if ew.err == nil {
			ew.err = WriteUsers(ew.w, eng.Profiles())
		}
	}

	ew.section("NETWORK STATISTICS")
	ew.printf("Total number of users: %d\n", eng.UserCount())
	ew.printf("Total number of connections: %d\n", eng.EdgeCount())
	avg, err := eng.AverageConnections()
	switch {
	case errors.Is(err, engine.ErrEmptyGraph):
		ew.printf("Average number of connections: n/a (no users)\n")
	case err != nil:
		return err
	default:
		ew.printf("Average number of connections: %.2f\n", avg)
	}

	ew.section(fmt.Sprintf("%d MOST CONNECTED USERS", opts.TopK))
	writeRanked(ew, eng.MostConnected(opts.TopK), "connections")

	ew.section(fmt.Sprintf("%d MOST INFLUENTIAL USERS", opts.TopK))
	writeRanked(ew, eng.MostInfluential(opts.TopK), "influence")

	ew.section(fmt.Sprintf("%d MOST CENTRAL USERS (PageRank)", opts.TopK))
	for i, r := range eng.PageRank(opts.TopK, opts.PageRankDamping, opts.PageRankTolerance) {
		ew.printf("%2d. %-24s %.5f\n", i+1, r.Username, r.Score)
	}

	ew.section(fmt.Sprintf("%d LARGEST STRONGLY CONNECTED COMPONENTS", opts.TopK))
	for i, comp := range eng.Components(opts.TopK) {
		ew.printf("%2d. size %d: %s\n", i+1, len(comp), summarize(comp, 8))
	}

	if opts.SuggestFor != "" {
		ew.section(fmt.Sprintf("FRIEND SUGGESTIONS (%s)", opts.SuggestFor))
		if p, ok := eng.Profile(opts.SuggestFor); ok {
			ew.printf("for %s %s\n", p.FirstName, p.LastName)
			writeRanked(ew, eng.Suggest(opts.SuggestFor, opts.TopK), "mutual")
		} else {
			ew.printf("unknown user %s\n", opts.SuggestFor)
		}
	}

	if len(opts.SeparationPairs) > 0 {
		ew.section(fmt.Sprintf("DEGREE OF SEPARATION (%d sets of users)", len(opts.SeparationPairs)))
		for _, pair := range opts.SeparationPairs {
			ew.printf("%s -> %s: %s\n", pair.Follower, pair.Followee, FormatDegree(eng.SepDegree(pair.Follower, pair.Followee)))
		}
	}

	return ew.err
}

// WriteUsers prints the diagnostic listing, one user per line in username order.
func WriteUsers(w io.Writer, profiles []engine.Profile) error {
	for _, p := range profiles {
		_, err := fmt.Fprintf(w, "%-24s %-14s %-14s following %4d  followers %4d\n",
			p.Username, p.FirstName, p.LastName, p.FollowingCount, p.FollowerCount)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatDegree renders a degree of separation, spelling out the unreachable case.
func FormatDegree(degree int) string {
	if degree < 0 {
		return "unreachable"
	}
	return fmt.Sprintf("%d", degree)
}

func writeRanked(ew *errWriter, ranked []engine.Ranked, label string) {
	if len(ranked) == 0 {
		ew.printf("(none)\n")
		return
	}
	for i, r := range ranked {
		ew.printf("%2d. %-24s %s=%d\n", i+1, r.Username, label, r.Score)
	}
}

// summarize joins up to limit names and notes how many were left out.
func summarize(names []string, limit int) string {
	if len(names) <= limit {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s, ... (+%d more)", strings.Join(names[:limit], ", "), len(names)-limit)
}
