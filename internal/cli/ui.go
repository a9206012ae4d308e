package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/meikuraledutech/pipeline"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorGreen = lipgloss.Color("35")
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printResult(w io.Writer, name string, r pipeline.Result) {
	if r.IsDAG {
		fmt.Fprintf(w, "%s %s is a DAG\n", styleSuccess.Render(iconSuccess), name)
	} else {
		fmt.Fprintf(w, "%s %s contains a cycle\n", styleError.Render(iconError), name)
	}
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("nodes"), styleNumber.Render(fmt.Sprint(r.NumNodes)))
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render("edges"), styleNumber.Render(fmt.Sprint(r.NumEdges)))
}
