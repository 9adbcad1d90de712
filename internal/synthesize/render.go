package synthesize

import (
	"fmt"
	"strings"

	"repair-assistant/internal/repair"
)

// RenderGuides renders guides as Markdown: title, numbered steps and image links.
func RenderGuides(r *repair.GuideResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", r.Device)

	for _, g := range r.Guides {
		fmt.Fprintf(&b, "\n## %s\n", g.Title)
		for i, st := range g.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, st.Text)
			for _, img := range st.Images {
				fmt.Fprintf(&b, "   ![Step %d](%s)\n", i+1, img)
			}
		}
	}
	return b.String()
}

// RenderWeb renders the web answer followed by its sources.
func RenderWeb(r *repair.WebResult) string {
	var b strings.Builder
	if r.Answer != "" {
		b.WriteString(r.Answer)
		b.WriteString("\n")
	}
	if len(r.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for _, src := range r.Sources {
			fmt.Fprintf(&b, "- [%s](%s): %s\n", src.Title, src.URL, src.Snippet)
		}
	}
	return b.String()
}
