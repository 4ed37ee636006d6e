package models

// ArtistInviteStatus is the lifecycle phase of an artist invite.
type ArtistInviteStatus string

const (
	ArtistInviteStatusUpcoming  ArtistInviteStatus = "upcoming"
	ArtistInviteStatusOpen      ArtistInviteStatus = "open"
	ArtistInviteStatusSelecting ArtistInviteStatus = "selecting"
	ArtistInviteStatusClosed    ArtistInviteStatus = "closed"
)

// ArtistInviteTimeLayout is the timestamp layout used by opened_at/closed_at.
const ArtistInviteTimeLayout = "2006-01-02T15:04:05.000000Z"

// ArtistInvite is an open call for submissions.
type ArtistInvite struct {
	ID         ID     `json:"id"`
	Slug       string `json:"slug,omitempty"`
	Title      string `json:"title"`
	InviteType string `json:"invite_type"`

	// ShortDescription and Description are HTML fragments.
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`

	HeaderImage *Image             `json:"header_image,omitempty"`
	LogoImage   *Image             `json:"logo_image,omitempty"`
	Status      ArtistInviteStatus `json:"status"`
	OpenedAt    string             `json:"opened_at"`
	ClosedAt    string             `json:"closed_at"`
}

// ArtistInviteStream is one page of artist invites.
type ArtistInviteStream struct {
	ArtistInvites []ArtistInvite `json:"artist_invites"`

	// Next is the page number of the following page as reported by the
	// Link header. Empty means there are no further pages.
	Next string `json:"-"`
}
