package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a tab body with its hot key line under a divider.
func renderPage(header, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/shift+tab switch  q quit"))

	return b.String()
}

func cursorPrefix(selected bool) string {
	if selected {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// firstLine returns the first line of v.
func firstLine(v string) string {
	if i := strings.IndexByte(v, '\n'); i >= 0 {
		return v[:i]
	}
	return v
}

// visibleWindow returns the [from, to) range of n rows to show so that
// cursor stays visible within height rows.
func visibleWindow(n, cursor, height int) (from, to int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	from = cursor - height/2
	if from < 0 {
		from = 0
	}
	to = from + height
	if to > n {
		to = n
		from = to - height
	}
	return from, to
}
