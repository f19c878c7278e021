package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wellness/internal/analytics"
	"wellness/internal/app"
	"wellness/internal/domain"
)

// ReportCmd prints a terminal summary for one user.
type ReportCmd struct {
	User string `help:"Username to report on." required:"" short:"u"`
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Width(26)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityHealthy:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		domain.SeverityModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

func (c *ReportCmd) Run(g *Globals) error {
	st, err := openStores(g)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	entries := app.NewEntryService(st.entries)
	d, err := app.NewDashboardService(entries).Build(context.Background(), c.User)
	if err != nil {
		return err
	}
	renderReport(os.Stdout, d)
	return nil
}

func renderReport(w io.Writer, d *app.Dashboard) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Wellness report for "+d.Username) + "\n")
	if len(d.Entries) == 0 {
		b.WriteString(dimStyle.Render("No entries yet.") + "\n")
		fmt.Fprint(w, b.String())
		return
	}
	fmt.Fprintf(&b, "%d entries, latest %s\n\n", len(d.Entries), d.Entries[0].Date)

	b.WriteString(titleStyle.Render("Summary") + "\n")
	for _, st := range d.Stats {
		b.WriteString(labelStyle.Render(st.Label) + formatStats(st) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("Latest recommendations") + "\n")
	for _, tip := range d.Recommendations {
		style, ok := severityStyles[tip.Severity]
		if !ok {
			style = lipgloss.NewStyle()
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s", tip.Severity, tip.Text)) + "\n")
	}

	if d.Correlations != nil {
		b.WriteString("\n" + titleStyle.Render("Correlations") + "\n")
		fields := d.Correlations.Fields
		for i := range fields {
			for j := i + 1; j < len(fields); j++ {
				r, _ := d.Correlations.At(fields[i], fields[j])
				fmt.Fprintf(&b, "%s %s\n",
					labelStyle.Render(fmt.Sprintf("%s / %s", fields[i], fields[j])),
					domain.FormatNumber(r, 2))
			}
		}
	}
	fmt.Fprint(w, b.String())
}

func formatStats(st analytics.FieldStats) string {
	if st.Mean == nil {
		return dimStyle.Render("no data")
	}
	return fmt.Sprintf("mean %s  min %s  max %s  (n=%d)",
		domain.FormatNumber(*st.Mean, 2),
		domain.FormatNumber(*st.Min, 2),
		domain.FormatNumber(*st.Max, 2),
		st.Count)
}
