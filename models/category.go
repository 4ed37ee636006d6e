package models

// Meta category slugs. They are returned by the categories endpoint when
// meta categories are requested and map to dedicated post endpoints.
const (
	CategorySlugFeatured = "featured"
	CategorySlugTrending = "trending"
	CategorySlugRecent   = "recent"
)

// Category is a browsable post category.
type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	TileImage   *Image `json:"tile_image,omitempty"`
	Order       int    `json:"order"`
	Description string `json:"description,omitempty"`
	IsCreator   bool   `json:"is_creator_type"`
}

// IsMeta reports whether c is one of the synthetic meta categories.
func (c Category) IsMeta() bool {
	switch c.Slug {
	case CategorySlugFeatured, CategorySlugTrending, CategorySlugRecent:
		return true
	default:
		return false
	}
}

// CategoryStream is the categories endpoint payload.
type CategoryStream struct {
	Categories []Category `json:"categories"`
}
