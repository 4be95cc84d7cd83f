package rowparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	// Mixed CRLF/LF endings, a quoted comma, and a doubled-quote escape
	// must all survive parsing back to the original grid.
	text := "ref,beneficiary,amount\r\n" +
		"LOAN1,\"Tan, Jane\",500.00\n" +
		"LOAN2,\"He said \"\"hi\"\"\",42.50\r\n"

	rows, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ref", "beneficiary", "amount"}, rows[0])
	assert.Equal(t, []string{"LOAN1", "Tan, Jane", "500.00"}, rows[1])
	assert.Equal(t, []string{"LOAN2", `He said "hi"`, "42.50"}, rows[2])
}

func TestDelimiterDetection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "semicolon",
			text: "a;b;c\n1;2;3\n",
			want: []string{"a", "b", "c"},
		},
		{
			name: "tab",
			text: "a\tb\tc\n1\t2\t3\n",
			want: []string{"a", "b", "c"},
		},
		{
			name: "comma wins ties",
			text: "a,b\n1,2\n",
			want: []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows[0])
		})
	}
}

func TestQuotedDelimiterNotSplit(t *testing.T) {
	rows, err := Parse("x;\"a;b\";y\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"x", "a;b", "y"}, rows[0])
}

func TestBlankLinesDropped(t *testing.T) {
	rows, err := Parse("\n\na,b\n,,\n1,2\n\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestLeadingBlankLinesBeforeHeader(t *testing.T) {
	// Delimiter detection must skip blank lines and read the real header.
	rows, err := Parse("\n\na;b;c\n1;2;3\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
}

func TestFieldsTrimmed(t *testing.T) {
	rows, err := Parse("a , b \n 1 ,2\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestEmptyInput(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)

	_, err = Parse("  \n \r\n ")
	assert.Error(t, err)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank([]string{"", "", ""}))
	assert.True(t, IsBlank(nil))
	assert.False(t, IsBlank([]string{"", "x"}))
}
