package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/jasvilladarez/ello-go/internal/viewmodel"
)

const lineWidth = 72

func editorialFormat() itemFormat[viewmodel.EditorialItem] {
	return itemFormat[viewmodel.EditorialItem]{
		line: func(e viewmodel.EditorialItem) string {
			line := e.Title
			if e.Subtitle != "" {
				line += " - " + firstLine(e.Subtitle)
			}
			return fitText(line, lineWidth)
		},
		detail: func(e viewmodel.EditorialItem) string {
			var b strings.Builder
			b.WriteString(titleStyle.Render(e.Title) + "\n")
			fmt.Fprintf(&b, "Kind: %s\n", e.Kind)
			if e.Subtitle != "" {
				b.WriteString("\n" + e.Subtitle + "\n")
			}
			writeLink(&b, e.Link)
			return b.String()
		},
		link: func(e viewmodel.EditorialItem) string { return e.Link },
	}
}

func artistInviteFormat(now func() time.Time) itemFormat[viewmodel.ArtistInviteItem] {
	return itemFormat[viewmodel.ArtistInviteItem]{
		line: func(a viewmodel.ArtistInviteItem) string {
			line := fmt.Sprintf("%s [%s]", a.Title, a.Status.Label())
			if schedule := a.Schedule(now()); schedule != "" {
				line += " " + schedule
			}
			return fitText(line, lineWidth)
		},
		detail: func(a viewmodel.ArtistInviteItem) string {
			var b strings.Builder
			b.WriteString(titleStyle.Render(a.Title) + "\n")
			if a.InviteType != "" {
				b.WriteString(a.InviteType + "\n")
			}
			fmt.Fprintf(&b, "%s  %s\n", a.Status.Label(), a.Schedule(now()))
			if a.Description != "" {
				b.WriteString("\n" + a.Description + "\n")
			}
			writeLink(&b, a.Link)
			return b.String()
		},
		link: func(a viewmodel.ArtistInviteItem) string { return a.Link },
	}
}

func postLine(p viewmodel.PostItem) string {
	author := "@" + p.AuthorUsername
	if p.AuthorUsername == "" {
		author = "@unknown"
	}

	var summary string
	for _, block := range p.Summary {
		switch b := block.(type) {
		case viewmodel.TextBlockItem:
			summary = firstLine(b.Text)
		case viewmodel.ImageBlockItem:
			summary = "[image]"
		case viewmodel.EmbedBlockItem:
			summary = "[embed] " + b.EmbedURL
		}
		if summary != "" {
			break
		}
	}

	return fitText(author+"  "+summary, lineWidth)
}

func writeLink(b *strings.Builder, link string) {
	if link == "" {
		return
	}
	b.WriteString("\n" + helpStyle.Render(link) + "\n")
}
