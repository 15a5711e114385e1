package formatter

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/core/base/indent"
	"github.com/alecthomas/assert/v2"
)

func TestScriptFormatter(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		input    []string
		expected []string
	}{
		{
			name:    "normalizes two spaces to four",
			options: DefaultOptions,
			input: []string{
				"command /hello:",
				"  description: says hello",
				"  trigger:",
				`     send "hi"`,
			},
			expected: []string{
				"command /hello:",
				"    description: says hello",
				"    trigger:",
				`        send "hi"`,
			},
		},
		{
			name:    "tabs",
			options: Options{Style: indent.Tab},
			input: []string{
				"on join:",
				"    if player is op:",
				"        stop",
			},
			expected: []string{
				"on join:",
				"\tif player is op:",
				"\t\tstop",
			},
		},
		{
			name:    "comments follow the next node and blanks stay empty",
			options: Options{Style: indent.Space, Width: 2},
			input: []string{
				"# header",
				"on join:",
				"",
				"      # greet",
				"   send \"hi\"   ",
				"    ",
				"# trailing",
			},
			expected: []string{
				"# header",
				"on join:",
				"",
				"  # greet",
				`  send "hi"`,
				"",
				"# trailing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewScriptFormatter(tt.options)
			assert.Equal(t, strings.Join(tt.expected, "\n"), f.Format(strings.Join(tt.input, "\n")))
		})
	}
}

func TestScriptFormatterFromReader(t *testing.T) {
	var out bytes.Buffer

	f := NewScriptFormatter(Options{Style: indent.Space})
	assert.NoError(t, f.FormatFromReader(strings.NewReader("a:\n\tb"), &out))
	assert.Equal(t, "a:\n    b", out.String())
}

func TestOptionsFor(t *testing.T) {
	assert.Equal(t, Options{Style: indent.Tab, Width: 1}, OptionsFor("tabs", 1))
	assert.Equal(t, Options{Style: indent.Space, Width: 2}, OptionsFor("spaces", 2))
}
