package models

// Image is a set of renditions of one uploaded picture. The API only fills
// the renditions relevant to the resource: avatars and category tiles use
// small/regular/large, post assets and editorials use the density buckets.
type Image struct {
	Ldpi      *ImageVersion `json:"ldpi,omitempty"`
	Mdpi      *ImageVersion `json:"mdpi,omitempty"`
	Hdpi      *ImageVersion `json:"hdpi,omitempty"`
	Xhdpi     *ImageVersion `json:"xhdpi,omitempty"`
	Small     *ImageVersion `json:"small,omitempty"`
	Regular   *ImageVersion `json:"regular,omitempty"`
	Large     *ImageVersion `json:"large,omitempty"`
	Optimized *ImageVersion `json:"optimized,omitempty"`
	Original  *ImageVersion `json:"original,omitempty"`
}

// ImageVersion is a single rendition.
type ImageVersion struct {
	URL      string         `json:"url"`
	Metadata *ImageMetadata `json:"metadata,omitempty"`
}

// ImageMetadata describes the pixel size and MIME type of a rendition.
type ImageMetadata struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Type   string `json:"type"`
}

// BestURL returns the URL of the first available rendition in the order
// preferred for list thumbnails, or "" when the image is nil or empty.
func (i *Image) BestURL() string {
	if i == nil {
		return ""
	}

	for _, v := range []*ImageVersion{i.Mdpi, i.Regular, i.Hdpi, i.Optimized, i.Original, i.Large, i.Small, i.Ldpi, i.Xhdpi} {
		if v != nil && v.URL != "" {
			return v.URL
		}
	}

	return ""
}

// OriginalURL returns the URL of the original upload, or "" if unknown.
func (i *Image) OriginalURL() string {
	if i == nil || i.Original == nil {
		return ""
	}
	return i.Original.URL
}
