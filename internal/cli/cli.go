package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/elizacamber/composeplayground/internal/config"
	"github.com/elizacamber/composeplayground/internal/core"
	"github.com/elizacamber/composeplayground/internal/ui"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const fallbackWidth = 80

// HandleCLI checks if the program was invoked with CLI arguments (not TUI mode).
// Returns true if a CLI command was handled, false if it should proceed to TUI.
func HandleCLI(args []string) bool {
	if len(args) <= 1 {
		return false
	}

	var err error
	switch args[1] {
	case "grid", "--grid":
		var opts *GridOptions
		if opts, err = ParseGridFlags(args[2:]); err == nil {
			err = RunGrid(os.Stdout, opts)
		}
	case "moreless", "--moreless":
		var opts *MoreLessOptions
		if opts, err = ParseMoreLessFlags(args[2:], TerminalWidth()); err == nil {
			err = RunMoreLess(os.Stdout, opts)
		}
	case "version", "--version", "-v":
		fmt.Printf("%s %s\n", config.AppName, config.Version)
	case "help", "--help", "-h":
		PrintUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[1])
		PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return true
}

// PrintUsage prints the usage information for every command
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: playground [command]\n")
	fmt.Fprintf(w, "\nWithout a command the interactive playground starts.\n")
	fmt.Fprintf(w, "\nCommands:\n")
	fmt.Fprintf(w, "  grid [--rows N] [--pad N] [--table] word...    print a staggered chip layout\n")
	fmt.Fprintf(w, "  moreless [--width N] [--max-lines N] [--expanded] text\n")
	fmt.Fprintf(w, "                                                  print a collapsible text\n")
	fmt.Fprintf(w, "  version                                         print the version\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  playground grid --rows 2 Books Film Music TV\n")
	fmt.Fprintf(w, "  echo \"some long text\" | playground moreless --width 30\n")
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// --- grid ---

// GridOptions are the parsed arguments of the grid command.
type GridOptions struct {
	Rows    int
	Padding int
	Table   bool
	Words   []string
}

// ParseGridFlags parses the grid command's flags. Defaults come from the
// default config.
func ParseGridFlags(args []string) (*GridOptions, error) {
	d := config.DefaultConfig()
	gridCmd := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridCmd.SetOutput(io.Discard)

	opts := &GridOptions{}
	gridCmd.IntVar(&opts.Rows, "rows", d.Stagger.Rows, "Number of rows")
	gridCmd.IntVar(&opts.Rows, "r", d.Stagger.Rows, "Alias for --rows")
	gridCmd.IntVar(&opts.Padding, "pad", d.Stagger.ChipPadding, "Cells between chips")
	gridCmd.BoolVar(&opts.Table, "table", false, "Also print the placement table")

	if err := gridCmd.Parse(args); err != nil {
		return nil, err
	}
	if gridCmd.NArg() == 0 {
		return nil, errors.New("grid needs at least one word")
	}
	if opts.Padding < 0 {
		return nil, fmt.Errorf("pad must not be negative, got %d", opts.Padding)
	}
	opts.Words = gridCmd.Args()
	return opts, nil
}

// RunGrid renders one chip per word, lays them out in rows and prints the canvas.
func RunGrid(w io.Writer, opts *GridOptions) error {
	chips := make([]string, len(opts.Words))
	for i, word := range opts.Words {
		chips[i] = ui.RenderChip(word, opts.Padding)
	}
	sizes := ui.MeasureBlocks(chips)

	layout, err := core.LayoutRows(opts.Rows, sizes, core.Loose(core.Unbounded, core.Unbounded))
	if err != nil {
		return err
	}
	log.Printf("grid: %d words in %d rows, %dx%d", len(opts.Words), opts.Rows, layout.Width, layout.Height)

	for _, line := range ui.ComposeCanvas(layout, chips) {
		fmt.Fprintln(w, line)
	}

	if opts.Table {
		fmt.Fprintln(w)
		writePlacementTable(w, opts.Words, sizes, layout)
	}
	return nil
}

// writePlacementTable prints one row per word with its row, position and size.
func writePlacementTable(w io.Writer, words []string, sizes []core.Box, layout core.StaggeredLayout) {
	header := []string{"#", "word", "row", "x", "y", "w", "h"}
	rows := [][]string{header}
	for i, word := range words {
		p := layout.Placements[i]
		rows = append(rows, []string{
			fmt.Sprint(i),
			word,
			fmt.Sprint(core.RowOf(i, len(layout.Rows))),
			fmt.Sprint(p.X),
			fmt.Sprint(p.Y),
			fmt.Sprint(sizes[i].Width),
			fmt.Sprint(sizes[i].Height),
		})
	}

	widths := make([]int, len(header))
	for _, r := range rows {
		for c, cell := range r {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	for _, r := range rows {
		cells := make([]string, len(r))
		for c, cell := range r {
			cells[c] = runewidth.FillRight(cell, widths[c])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	fmt.Fprintf(w, "\n%dx%d in %d rows\n", layout.Width, layout.Height, len(layout.Rows))
}

// --- moreless ---

// MoreLessOptions are the parsed arguments of the moreless command.
type MoreLessOptions struct {
	Width    int
	MaxLines int
	Expanded bool
	Text     string
}

// ParseMoreLessFlags parses the moreless command's flags. Without positional
// text the text is read from stdin by RunMoreLess.
func ParseMoreLessFlags(args []string, defaultWidth int) (*MoreLessOptions, error) {
	d := config.DefaultConfig()
	mlCmd := flag.NewFlagSet("moreless", flag.ContinueOnError)
	mlCmd.SetOutput(io.Discard)

	opts := &MoreLessOptions{}
	mlCmd.IntVar(&opts.Width, "width", defaultWidth, "Wrap width in cells")
	mlCmd.IntVar(&opts.Width, "w", defaultWidth, "Alias for --width")
	mlCmd.IntVar(&opts.MaxLines, "max-lines", d.MoreLess.MaxLines, "Lines shown while collapsed")
	mlCmd.BoolVar(&opts.Expanded, "expanded", false, "Render the expanded state")

	if err := mlCmd.Parse(args); err != nil {
		return nil, err
	}
	if opts.Width < 1 {
		return nil, fmt.Errorf("width must be at least 1, got %d", opts.Width)
	}
	opts.Text = strings.Join(mlCmd.Args(), " ")
	return opts, nil
}

// RunMoreLess measures the text at the given width and prints the collapsed
// or expanded render.
func RunMoreLess(w io.Writer, opts *MoreLessOptions) error {
	return runMoreLess(w, os.Stdin, opts)
}

func runMoreLess(w io.Writer, stdin io.Reader, opts *MoreLessOptions) error {
	text := opts.Text
	if text == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("could not read text from stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}

	mlOpts := config.DefaultConfig().MoreLessOptions()
	mlOpts.MaxLines = opts.MaxLines

	m := ui.MeasureText(text, opts.Width, opts.MaxLines)
	r, err := core.Decide(text, mlOpts, m, opts.Expanded)
	switch {
	case errors.Is(err, core.ErrTruncationOverflow):
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	case err != nil:
		return err
	}

	affordance := lipgloss.NewStyle().Underline(true).Bold(true)
	for _, line := range ui.WrapRendered(r, opts.Width, affordance) {
		fmt.Fprintln(w, line)
	}
	return nil
}
