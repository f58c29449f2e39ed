package cli

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/elizacamber/composeplayground/internal/core"
)

const longSample = "a dummy text that should be too long to show entirely in two lines and should show the expand buttons"

func TestParseGridFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *GridOptions
		expectError bool
	}{
		{
			name:     "Defaults",
			args:     []string{"Books", "Film"},
			expected: &GridOptions{Rows: 3, Padding: 1, Words: []string{"Books", "Film"}},
		},
		{
			name:     "Rows and Table",
			args:     []string{"--rows", "2", "--table", "TV"},
			expected: &GridOptions{Rows: 2, Padding: 1, Table: true, Words: []string{"TV"}},
		},
		{
			name:     "Rows Alias and Pad",
			args:     []string{"-r", "4", "--pad", "0", "Maths"},
			expected: &GridOptions{Rows: 4, Padding: 0, Words: []string{"Maths"}},
		},
		{
			name:        "No Words",
			args:        []string{"--rows", "2"},
			expectError: true,
		},
		{
			name:        "Negative Pad",
			args:        []string{"--pad", "-1", "a"},
			expectError: true,
		},
		{
			name:        "Unknown Flag",
			args:        []string{"--columns", "2", "a"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseGridFlags(tt.args)
			if (err != nil) != tt.expectError {
				t.Fatalf("ParseGridFlags() error = %v, expectError %v", err, tt.expectError)
			}
			if !tt.expectError && !reflect.DeepEqual(opts, tt.expected) {
				t.Errorf("ParseGridFlags() = %+v, want %+v", opts, tt.expected)
			}
		})
	}
}

func TestRunGrid(t *testing.T) {
	var buf bytes.Buffer
	opts := &GridOptions{Rows: 2, Padding: 1, Words: []string{"Books", "Film", "TV"}}
	if err := RunGrid(&buf, opts); err != nil {
		t.Fatal(err)
	}
	out := ansi.Strip(buf.String())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// two rows of bordered chips
	if len(lines) != 6 {
		t.Fatalf("Expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Books") || !strings.Contains(lines[1], "TV") {
		t.Errorf("Expected Books and TV on the first row, got %q", lines[1])
	}
	if !strings.Contains(lines[4], "Film") {
		t.Errorf("Expected Film on the second row, got %q", lines[4])
	}
	if strings.Index(lines[1], "Books") > strings.Index(lines[1], "TV") {
		t.Errorf("Expected Books before TV, got %q", lines[1])
	}
}

func TestRunGrid_Table(t *testing.T) {
	var buf bytes.Buffer
	opts := &GridOptions{Rows: 2, Padding: 0, Table: true, Words: []string{"Books", "Film", "TV"}}
	if err := RunGrid(&buf, opts); err != nil {
		t.Fatal(err)
	}
	out := ansi.Strip(buf.String())
	for _, want := range []string{"word", "row", "Books", "in 2 rows"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	var filmRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Film") && strings.HasPrefix(line, "1") {
			filmRow = line
		}
	}
	fields := strings.Fields(filmRow)
	if len(fields) != 7 || fields[2] != "1" || fields[3] != "0" || fields[4] != "3" {
		t.Errorf("Unexpected placement row for Film: %q", filmRow)
	}
}

func TestRunGrid_InvalidRows(t *testing.T) {
	var buf bytes.Buffer
	err := RunGrid(&buf, &GridOptions{Rows: 0, Words: []string{"a"}})
	if !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestParseMoreLessFlags(t *testing.T) {
	opts, err := ParseMoreLessFlags([]string{"hello", "world"}, 60)
	if err != nil {
		t.Fatal(err)
	}
	expected := &MoreLessOptions{Width: 60, MaxLines: 2, Text: "hello world"}
	if !reflect.DeepEqual(opts, expected) {
		t.Errorf("ParseMoreLessFlags() = %+v, want %+v", opts, expected)
	}

	opts, err = ParseMoreLessFlags([]string{"--width", "30", "--max-lines", "3", "--expanded", "x"}, 60)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Width != 30 || opts.MaxLines != 3 || !opts.Expanded {
		t.Errorf("Unexpected options %+v", opts)
	}

	if _, err := ParseMoreLessFlags([]string{"--width", "0", "x"}, 60); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestRunMoreLess(t *testing.T) {
	tests := []struct {
		name     string
		opts     MoreLessOptions
		expected []string
	}{
		{
			name: "Collapsed",
			opts: MoreLessOptions{Width: 40, MaxLines: 2, Text: longSample},
			expected: []string{
				"a dummy text that should be too long to",
				"show entirely in two ...     show more",
			},
		},
		{
			name: "Expanded",
			opts: MoreLessOptions{Width: 40, MaxLines: 2, Expanded: true, Text: longSample},
			expected: []string{
				"a dummy text that should be too long to",
				"show entirely in two lines and should",
				"show the expand buttons     show less",
			},
		},
		{
			name:     "Fits",
			opts:     MoreLessOptions{Width: 40, MaxLines: 2, Text: "short text"},
			expected: []string{"short text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runMoreLess(&buf, strings.NewReader(""), &tt.opts); err != nil {
				t.Fatal(err)
			}
			got := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("runMoreLess() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRunMoreLess_Stdin(t *testing.T) {
	var buf bytes.Buffer
	opts := &MoreLessOptions{Width: 40, MaxLines: 2}
	if err := runMoreLess(&buf, strings.NewReader("from stdin\n"), opts); err != nil {
		t.Fatal(err)
	}
	if got := ansi.Strip(buf.String()); got != "from stdin\n" {
		t.Errorf("runMoreLess() = %q", got)
	}
}

func TestRunMoreLess_InvalidMaxLines(t *testing.T) {
	var buf bytes.Buffer
	err := runMoreLess(&buf, strings.NewReader(""), &MoreLessOptions{Width: 40, MaxLines: 0, Text: "x"})
	if !errors.Is(err, core.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}
