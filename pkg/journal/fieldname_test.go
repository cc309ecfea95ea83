package journal

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFieldName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "EMPTY",
		},
		{
			name:     "already legal",
			input:    "MESSAGE",
			expected: "MESSAGE",
		},
		{
			name:     "lowercase uppercased",
			input:    "msg",
			expected: "MSG",
		},
		{
			name:     "mixed case",
			input:    "Message",
			expected: "MESSAGE",
		},
		{
			name:     "leading digit escaped",
			input:    "1bad",
			expected: "ESC_1BAD",
		},
		{
			name:     "leading underscore escaped",
			input:    "_internal",
			expected: "ESC__INTERNAL",
		},
		{
			name:     "punctuation replaced",
			input:    "log.source-name",
			expected: "LOG_SOURCE_NAME",
		},
		{
			name:     "non-ascii mangled per byte",
			input:    "über",
			expected: "ESC___BER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFieldName(tt.input))
		})
	}
}

func TestSanitizeFieldNameTruncation(t *testing.T) {
	out := SanitizeFieldName(strings.Repeat("a", 100))
	require.Len(t, out, maxFieldNameLen)
	require.Equal(t, strings.Repeat("A", maxFieldNameLen), out)

	// Escaped names share the same total budget: 4 prefix bytes leave 60.
	out = SanitizeFieldName("1" + strings.Repeat("a", 100))
	require.Len(t, out, maxFieldNameLen)
	require.Equal(t, "ESC_1"+strings.Repeat("A", 59), out)
}

func TestSanitizeFieldNameAlwaysLegal(t *testing.T) {
	legal := regexp.MustCompile(`^[A-Z0-9_]+$`)

	inputs := []string{
		"", "a", "Z", "0", "9start", "~", "!!!", "\x00\x01\x02",
		"json.nested.key", "trailing.", "..", " spaces inside ",
		strings.Repeat("é", 50), strings.Repeat("x", 1000),
		"_", "__priority", "CamelCaseKey", "kebab-case-key",
	}

	for _, in := range inputs {
		out := SanitizeFieldName(in)

		require.True(t, legal.MatchString(out), "input %q produced %q", in, out)
		require.LessOrEqual(t, len(out), maxFieldNameLen)
		require.False(t, out[0] >= '0' && out[0] <= '9', "input %q produced leading digit %q", in, out)
	}
}
