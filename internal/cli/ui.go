package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/cliquebench/pkg/bench"
)

// =============================================================================
// Palette & Styles
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // results, numbers
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // failures
	colorWhite  = lipgloss.Color("255") // paths and values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // details, borders
)

var (
	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for counts in stats lines.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning text.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
	styleTableNumber = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// Status marks, each with its color.
var (
	markSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	markError   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	markWarning = lipgloss.NewStyle().Foreground(colorYellow).Render("!")
	markInfo    = lipgloss.NewStyle().Foreground(colorGray).Render("›")
	markFile    = StyleDim.Render("→")
)

// =============================================================================
// Status Output
// =============================================================================

func printStatus(mark, msg string) {
	fmt.Println(mark + " " + msg)
}

func printSuccess(format string, args ...any) {
	printStatus(markSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(markError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(markWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an indented arrow pointing at a written file.
func printFile(path string) {
	fmt.Println("  " + markFile + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints a dataset's size on one line.
func printStats(nodes, edges, k int) {
	line := fmt.Sprintf("%s nodes · %s edges · k=%s",
		StyleNumber.Render(strconv.Itoa(nodes)),
		StyleNumber.Render(strconv.Itoa(edges)),
		StyleNumber.Render(strconv.Itoa(k)))
	fmt.Println("  " + StyleDim.Render(line))
}

func printNewline() {
	fmt.Println()
}

// =============================================================================
// Results Table
// =============================================================================

// summaryTable renders per-algorithm results as a bordered table.
func summaryTable(summaries []bench.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Algorithm,
			strconv.Itoa(s.Runs),
			strconv.FormatFloat(s.MeanTimeUS, 'f', 1, 64),
			strconv.FormatInt(s.MaxTimeUS, 10),
			strconv.Itoa(s.MaxSize),
			strconv.Itoa(s.MaxN),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Runs", "Mean µs", "Max µs", "Max size", "Max N").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == 0:
				return styleTableCell
			default:
				return styleTableNumber
			}
		})
	return t.String()
}

// printSummary prints the results table.
func printSummary(summaries []bench.Summary) {
	fmt.Println(summaryTable(summaries))
}
