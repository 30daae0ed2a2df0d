package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// ANSI escapes used by the renderers.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// displayWidth is the printed width of s with escape sequences ignored.
func displayWidth(s string) int {
	return len(ansiSeq.ReplaceAllString(s, ""))
}

// Output writes command results, either human-readable with optional color
// or as indented JSON when --json is set.
type Output struct {
	writer       io.Writer
	jsonMode     bool
	colorEnabled bool
}

// NewOutput builds an Output from the command's flags and writer. Color is
// on only for a terminal in human mode.
func NewOutput(cmd *cobra.Command) *Output {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &Output{
		writer:       cmd.OutOrStdout(),
		jsonMode:     jsonMode,
		colorEnabled: !jsonMode && stdoutIsTerminal(),
	}
}

func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// IsJSON reports whether --json output was requested.
func (o *Output) IsJSON() bool {
	return o.jsonMode
}

// JSON writes data as indented JSON.
func (o *Output) JSON(data interface{}) error {
	enc := json.NewEncoder(o.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (o *Output) Printf(format string, args ...interface{}) {
	fmt.Fprintf(o.writer, format, args...)
}

func (o *Output) Println(args ...interface{}) {
	fmt.Fprintln(o.writer, args...)
}

// line prints one formatted line wrapped in the given escape when color is
// enabled.
func (o *Output) line(code, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if o.colorEnabled {
		fmt.Fprintf(o.writer, "%s%s%s\n", code, msg, ansiReset)
	} else {
		fmt.Fprintln(o.writer, msg)
	}
}

func (o *Output) Success(format string, args ...interface{}) { o.line(ansiGreen, format, args...) }
func (o *Output) Error(format string, args ...interface{})   { o.line(ansiRed, format, args...) }
func (o *Output) Warning(format string, args ...interface{}) { o.line(ansiYellow, format, args...) }
func (o *Output) Info(format string, args ...interface{})    { o.line(ansiCyan, format, args...) }
func (o *Output) Bold(format string, args ...interface{})    { o.line(ansiBold, format, args...) }
func (o *Output) Dim(format string, args ...interface{})     { o.line(ansiDim, format, args...) }

// paint wraps text in an escape without a newline, for fragments embedded
// in larger lines or table cells.
func (o *Output) paint(code, text string) string {
	if !o.colorEnabled {
		return text
	}
	return code + text + ansiReset
}

func (o *Output) Green(text string) string    { return o.paint(ansiGreen, text) }
func (o *Output) Red(text string) string      { return o.paint(ansiRed, text) }
func (o *Output) Yellow(text string) string   { return o.paint(ansiYellow, text) }
func (o *Output) BoldText(text string) string { return o.paint(ansiBold, text) }

// StrengthText colors a yoga strength rating: strong green, weak red,
// moderate yellow.
func (o *Output) StrengthText(strength string) string {
	switch {
	case strings.HasPrefix(strength, "Very Strong"), strings.HasPrefix(strength, "Strong"):
		return o.Green(strength)
	case strings.HasPrefix(strength, "Weak"):
		return o.Red(strength)
	default:
		return o.Yellow(strength)
	}
}

// Table renders aligned columns. Widths are tracked as rows arrive; escape
// sequences in cells do not count toward alignment.
type Table struct {
	output  *Output
	headers []string
	rows    [][]string
	widths  []int
}

func NewTable(output *Output, headers ...string) *Table {
	t := &Table{
		output:  output,
		headers: headers,
		widths:  make([]int, len(headers)),
	}
	for i, h := range headers {
		t.widths[i] = displayWidth(h)
	}
	return t
}

// AddRow appends a row. Cells beyond the header count are dropped.
func (t *Table) AddRow(cells ...string) {
	if len(cells) > len(t.headers) {
		cells = cells[:len(t.headers)]
	}
	for i, cell := range cells {
		if w := displayWidth(cell); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, cells)
}

func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}
	t.printRow(t.headers, true)
	t.printSeparator()
	for _, row := range t.rows {
		t.printRow(row, false)
	}
}

func (t *Table) printRow(cells []string, header bool) {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", t.widths[i]-displayWidth(cell))
		if header && t.output.colorEnabled {
			padded = ansiBold + padded + ansiReset
		}
		parts = append(parts, padded)
	}
	t.output.Println(strings.Join(parts, "  "))
}

func (t *Table) printSeparator() {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w)
	}
	sep := strings.Join(parts, "──")
	if t.output.colorEnabled {
		sep = ansiDim + sep + ansiReset
	}
	t.output.Println(sep)
}
