package models

// EditorialKind is the presentation flavour of an editorial tile.
type EditorialKind string

const (
	EditorialKindPost       EditorialKind = "post"
	EditorialKindInternal   EditorialKind = "internal"
	EditorialKindExternal   EditorialKind = "external"
	EditorialKindPostStream EditorialKind = "post_stream"
)

// Editorial is a curated tile on the Ello editorial page.
type Editorial struct {
	ID    ID            `json:"id"`
	Kind  EditorialKind `json:"kind"`
	Title string        `json:"title"`

	// Subtitle is the plain subtitle; RenderedSubtitle is its HTML form.
	Subtitle         string `json:"subtitle,omitempty"`
	RenderedSubtitle string `json:"rendered_subtitle,omitempty"`

	// URL is set for internal and external editorials.
	URL string `json:"url,omitempty"`

	Image *Image         `json:"two_by_two_image,omitempty"`
	Links EditorialLinks `json:"links"`
}

// EditorialLinks holds the resources an editorial points at.
// Only the entry matching the editorial's kind is populated.
type EditorialLinks struct {
	Post       *PostLink       `json:"post,omitempty"`
	PostStream *PostStreamLink `json:"post_stream,omitempty"`
}

// PostLink references a single post.
type PostLink struct {
	ID   ID     `json:"id"`
	Href string `json:"href"`
}

// PostStreamLink references a stream of posts.
type PostStreamLink struct {
	Href string `json:"href"`
}

// EditorialStream is one page of editorials.
type EditorialStream struct {
	Editorials []Editorial `json:"editorials"`

	// Next is the cursor for the following page, taken from the response
	// Link header. Empty means there are no further pages.
	Next string `json:"-"`
}
