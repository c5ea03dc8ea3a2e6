package pathtui_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/pathlib/pkg/pathtui"
)

// stripTrailingSpaces removes trailing spaces from every line so expected
// strings do not need to account for lipgloss width-padding.
func stripTrailingSpaces(s string) string {
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		lines = append(lines, strings.TrimRight(line, " "))
	}

	return strings.Join(lines, "\n")
}

func TestGetErrorMessage(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input      error
		width      int
		totalPaths []int
		want       string
	}{
		"single plain error": {
			input: errors.New("something went wrong"),
			width: 80,
			want:  "\n  something went wrong\n\n",
		},
		"multiple errors with total": {
			input: multierror.Append(nil,
				fmt.Errorf("resolve %q: %w", "/a", errors.New("connection timeout")),
				fmt.Errorf("resolve %q: %w", "/b", errors.New("outside root")),
			),
			width:      80,
			totalPaths: []int{3},
			want: strings.Join([]string{
				"",
				`  ✗ resolve "/a": connection timeout`,
				`  ✗ resolve "/b": outside root`,
				"  2 of 3 paths failed",
				"",
				"",
			}, "\n"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pathtui.GetErrorMessage(tc.input, tc.width, tc.totalPaths...)
			stripped := stripTrailingSpaces(ansi.Strip(got))

			assert.Equal(t, tc.want, stripped)
		})
	}
}

func TestGetErrorMessage_Width(t *testing.T) {
	t.Parallel()

	merr := multierror.Append(nil,
		errors.New(strings.Repeat("x", 100)),
		errors.New("short"),
	)

	got := pathtui.GetErrorMessage(merr, 40)
	stripped := ansi.Strip(got)

	// Every output line must fit within the terminal width.
	for line := range strings.SplitSeq(stripped, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40, "line should fit within terminal width: %q", line)
	}
}
