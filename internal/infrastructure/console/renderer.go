package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"NarrativeScanner/internal/domain"
	"NarrativeScanner/internal/ports"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	confidenceHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	confidenceMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	confidenceLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Renderer prints reports for humans.
type Renderer struct {
	out io.Writer
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer writes to out, or stdout when nil.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// Render prints the summary view, plus per-signal and per-narrative detail when verbose.
func (r *Renderer) Render(report domain.Report, verbose bool) error {
	_, err := io.WriteString(r.out, Format(report, verbose))
	return err
}

// Format builds the console text for a report.
func Format(report domain.Report, verbose bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Narrative Scan"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(report.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC")))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Signals: %d  Narratives: %d  Build ideas: %d\n",
		report.Summary.Signals, report.Summary.Narratives, report.Summary.BuildIdeas)
	if len(report.Summary.Sources) > 0 {
		fmt.Fprintf(&b, "Sources: %s\n", strings.Join(report.Summary.Sources, ", "))
	}

	if verbose && len(report.Signals) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Signals"))
		b.WriteString("\n")
		for _, s := range report.Signals {
			fmt.Fprintf(&b, "%s %s\n", s.Source, mutedStyle.Render("("+s.Type+")"))
			for _, line := range s.Data {
				fmt.Fprintf(&b, "  - %s\n", line)
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Narratives"))
	b.WriteString("\n")
	for i, n := range report.Narratives {
		fmt.Fprintf(&b, "%d. %s [%s] %s\n", i+1, n.Name, confidenceStyle(n.Confidence).Render(string(n.Confidence)), mutedStyle.Render(n.Timeframe))
		if verbose {
			fmt.Fprintf(&b, "   %s\n", n.Evidence)
			if len(n.Keywords) > 0 {
				fmt.Fprintf(&b, "   %s\n", mutedStyle.Render("keywords: "+strings.Join(n.Keywords, ", ")))
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Build Ideas"))
	b.WriteString("\n")
	for i, idea := range report.BuildIdeas {
		fmt.Fprintf(&b, "%d. %s (%s, %s difficulty)\n", i+1, idea.Title, idea.NarrativeRef, idea.Difficulty)
		fmt.Fprintf(&b, "   %s\n", idea.Description)
		if verbose {
			fmt.Fprintf(&b, "   %s\n", mutedStyle.Render("target: "+idea.TargetMarket))
		}
	}

	return b.String()
}

func confidenceStyle(c domain.Confidence) lipgloss.Style {
	switch c {
	case domain.ConfidenceHigh:
		return confidenceHigh
	case domain.ConfidenceMedium:
		return confidenceMedium
	default:
		return confidenceLow
	}
}
