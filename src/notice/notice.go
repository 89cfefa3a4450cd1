// Package notice holds the auto-reload troubleshooting notice and renders it
// as a framed console section.
package notice

import (
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/vibecode/reloadnotice/src/output"
)

// Release is the app data version the auto-reload system shipped with.
var Release = semver.MustParse("11.4")

// Block is one framed paragraph of the notice.
type Block struct {
	Heading string
	Lines   []string
}

var blocks = []Block{
	{
		Heading: "WHAT CHANGED",
		Lines: []string{
			"The Vibecode App now checks its stored data version on launch.",
			"When the version changes, cached app data is cleared for you",
			"and the mock data store is reloaded with the current set.",
		},
	},
	{
		Heading: "STILL SEEING OLD DATA?",
		Lines: []string{
			"1. Fully close the app. Backgrounding it is not enough.",
			"2. Reopen the app and wait for the first screen to load.",
			"3. Pull down on the home screen to refresh.",
			"4. If nothing changed, restart the dev server and reload.",
			"5. As a last resort, reinstall the app to wipe local storage.",
		},
	},
	{
		Lines: []string{
			"No manual cache clearing is needed after this update.",
		},
	},
}

// Title returns the notice headline, e.g. "AUTO-RELOAD SYSTEM NOW ACTIVE - v11.4".
func Title() string {
	return fmt.Sprintf("AUTO-RELOAD SYSTEM NOW ACTIVE - v%d.%d", Release.Major(), Release.Minor())
}

// Blocks returns a copy of the notice body.
func Blocks() []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = Block{Heading: b.Heading, Lines: append([]string(nil), b.Lines...)}
	}
	return out
}

// Render writes the framed notice to w.
func Render(w io.Writer) {
	sec := output.NewSection(w, Title())
	for i, b := range blocks {
		if i > 0 {
			sec.Separator()
		}
		if b.Heading != "" {
			sec.Row("%s", b.Heading)
			sec.Row("")
		}
		for _, line := range b.Lines {
			sec.Row("%s", line)
		}
	}
	sec.Close()
	fmt.Fprintln(w)
}

// Text returns the rendered notice.
func Text() string {
	var b strings.Builder
	Render(&b)
	return b.String()
}
