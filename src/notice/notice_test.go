package notice

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecode/reloadnotice/src/output"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "AUTO-RELOAD SYSTEM NOW ACTIVE - v11.4", Title())
	assert.Equal(t, "11.4", Release.Original())
}

func TestTextIsDeterministic(t *testing.T) {
	first := Text()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Text())
	}
}

func TestTextLayout(t *testing.T) {
	text := Text()
	require.True(t, strings.HasSuffix(text, "\n\n"), "notice must end with a blank line")

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Equal(t, "", lines[0])
	assert.Equal(t,
		"    ── AUTO-RELOAD SYSTEM NOW ACTIVE - v11.4 "+strings.Repeat("─", 22)+"──",
		lines[1])
	assert.Equal(t, "", lines[len(lines)-1])
	assert.Equal(t, "    └"+strings.Repeat("─", 61), lines[len(lines)-2])

	body := lines[2 : len(lines)-2]
	separators := 0
	for _, line := range body {
		switch {
		case strings.HasPrefix(line, "    ├"):
			separators++
		case line == "    │":
		case strings.HasPrefix(line, "    │ "):
			row := strings.TrimPrefix(line, "    │ ")
			assert.LessOrEqual(t, utf8.RuneCountInString(row), output.MaxRowWidth, "row too wide: %q", row)
			assert.Equal(t, strings.TrimSpace(row), row, "row has stray whitespace: %q", row)
		default:
			t.Errorf("line outside frame: %q", line)
		}
	}
	assert.Equal(t, len(Blocks())-1, separators)
}

func TestTextContainsEveryBlock(t *testing.T) {
	text := Text()
	for _, b := range Blocks() {
		if b.Heading != "" {
			assert.Contains(t, text, "    │ "+b.Heading+"\n")
		}
		for _, line := range b.Lines {
			assert.Contains(t, text, "    │ "+line+"\n")
		}
	}
}

func TestBlocksReturnsCopy(t *testing.T) {
	before := Text()

	bs := Blocks()
	require.NotEmpty(t, bs)
	bs[0].Heading = "changed"
	bs[0].Lines[0] = "changed"

	assert.Equal(t, before, Text())
}
