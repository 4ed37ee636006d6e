package viewmodel

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jasvilladarez/ello-go/models"
)

// WebBaseURL is the public site posts and users link to.
const WebBaseURL = "https://ello.co"

// EditorialItem is an editorial tile ready to render.
type EditorialItem struct {
	ID       models.ID
	Kind     models.EditorialKind
	Title    string
	Subtitle string
	ImageURL string
	Link     string
}

func editorialKey(e EditorialItem) models.ID { return e.ID }

func mapEditorials(editorials []models.Editorial) []EditorialItem {
	items := make([]EditorialItem, 0, len(editorials))
	for _, e := range editorials {
		subtitle := e.Subtitle
		if e.RenderedSubtitle != "" {
			subtitle = HTMLToText(e.RenderedSubtitle)
		}

		items = append(items, EditorialItem{
			ID:       e.ID,
			Kind:     e.Kind,
			Title:    e.Title,
			Subtitle: subtitle,
			ImageURL: e.Image.BestURL(),
			Link:     editorialLink(e),
		})
	}
	return items
}

func editorialLink(e models.Editorial) string {
	switch {
	case e.URL != "":
		return e.URL
	case e.Links.Post != nil:
		return e.Links.Post.Href
	case e.Links.PostStream != nil:
		return e.Links.PostStream.Href
	default:
		return ""
	}
}

// InviteStatus is the phase an artist invite is in.
type InviteStatus int

const (
	InviteUpcoming InviteStatus = iota
	InviteOpen
	InviteSelecting
	InviteClosed
)

// Label is the status line shown on an invite.
func (s InviteStatus) Label() string {
	switch s {
	case InviteUpcoming:
		return "Upcoming"
	case InviteOpen:
		return "Open For Submissions"
	case InviteSelecting:
		return "Selection In Progress"
	default:
		return "Invite Closed"
	}
}

// parseInviteStatus treats unknown phases as closed.
func parseInviteStatus(status models.ArtistInviteStatus) InviteStatus {
	switch status {
	case models.ArtistInviteStatusUpcoming:
		return InviteUpcoming
	case models.ArtistInviteStatusOpen:
		return InviteOpen
	case models.ArtistInviteStatusSelecting:
		return InviteSelecting
	default:
		return InviteClosed
	}
}

// ArtistInviteItem is an artist invite ready to render.
type ArtistInviteItem struct {
	ID             models.ID
	Title          string
	InviteType     string
	Description    string
	HeaderImageURL string
	LogoImageURL   string
	Status         InviteStatus
	OpensAt        time.Time
	ClosesAt       time.Time
	Link           string
}

func artistInviteKey(a ArtistInviteItem) models.ID { return a.ID }

// Schedule returns the timing line of the invite as seen at now. It is empty
// when the relevant date is unknown.
func (a ArtistInviteItem) Schedule(now time.Time) string {
	switch a.Status {
	case InviteUpcoming:
		if a.OpensAt.IsZero() {
			return ""
		}
		return "Opens " + a.OpensAt.Format("January 02, 2006")
	case InviteOpen:
		if a.ClosesAt.IsZero() {
			return ""
		}
		return fmt.Sprintf("%d Days Remaining", int(a.ClosesAt.Sub(now)/(24*time.Hour)))
	case InviteSelecting:
		return "Hold Tight"
	default:
		if a.OpensAt.IsZero() {
			return ""
		}
		return a.OpensAt.Format("January 2006")
	}
}

func mapArtistInvites(invites []models.ArtistInvite) []ArtistInviteItem {
	items := make([]ArtistInviteItem, 0, len(invites))
	for _, a := range invites {
		description := a.ShortDescription
		if description == "" {
			description = a.Description
		}

		item := ArtistInviteItem{
			ID:             a.ID,
			Title:          a.Title,
			InviteType:     a.InviteType,
			Description:    HTMLToText(description),
			HeaderImageURL: a.HeaderImage.BestURL(),
			LogoImageURL:   a.LogoImage.BestURL(),
			Status:         parseInviteStatus(a.Status),
			OpensAt:        parseInviteTime(a.OpenedAt),
			ClosesAt:       parseInviteTime(a.ClosedAt),
		}
		if a.Slug != "" {
			item.Link = WebBaseURL + "/artist-invites/" + url.PathEscape(a.Slug)
		}
		items = append(items, item)
	}
	return items
}

func parseInviteTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(models.ArtistInviteTimeLayout, raw)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return time.Time{}
		}
	}
	return t
}

// CategoryItem is a selectable category.
type CategoryItem struct {
	Name     string
	Slug     string
	ImageURL string
}

func mapCategories(categories []models.Category) []CategoryItem {
	items := make([]CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, CategoryItem{
			Name:     c.Name,
			Slug:     c.Slug,
			ImageURL: c.TileImage.OriginalURL(),
		})
	}
	return items
}

// PostItem is a post summary ready to render.
type PostItem struct {
	ID             models.ID
	AuthorUsername string
	AuthorImageURL string
	Summary        []PostBlockItem
	Link           string
}

func postKey(p PostItem) models.ID { return p.ID }

// PostBlockItem is one rendered block of a post summary.
//
//sumtype:decl
type PostBlockItem interface {
	isPostBlockItem()
}

type (
	TextBlockItem  struct{ Text string }
	ImageBlockItem struct{ ImageURL string }
	EmbedBlockItem struct{ EmbedURL string }
)

func (TextBlockItem) isPostBlockItem()  {}
func (ImageBlockItem) isPostBlockItem() {}
func (EmbedBlockItem) isPostBlockItem() {}

// mapPosts resolves each post's author from the side-loaded users.
func mapPosts(stream models.PostStream) []PostItem {
	items := make([]PostItem, 0, len(stream.Posts))
	for _, p := range stream.Posts {
		item := PostItem{
			ID:      p.ID,
			Summary: mapPostBlocks(p.Summary),
			Link:    p.Href,
		}
		if author, ok := stream.Linked.User(p.Author()); ok {
			item.AuthorUsername = author.Username
			item.AuthorImageURL = author.Avatar.BestURL()
			if p.Token != "" {
				item.Link = WebBaseURL + "/" + url.PathEscape(author.Username) + "/post/" + url.PathEscape(p.Token)
			}
		}
		items = append(items, item)
	}
	return items
}

func mapPostBlocks(blocks models.PostBlocks) []PostBlockItem {
	items := make([]PostBlockItem, 0, len(blocks))
	for _, block := range blocks {
		switch b := block.(type) {
		case models.TextBlock:
			items = append(items, TextBlockItem{Text: HTMLToText(b.Text)})
		case models.ImageBlock:
			items = append(items, ImageBlockItem{ImageURL: b.Image.URL})
		case models.EmbedBlock:
			items = append(items, EmbedBlockItem{EmbedURL: b.Data.URL})
		}
	}
	return items
}
