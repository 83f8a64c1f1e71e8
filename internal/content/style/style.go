package style

// Image is a stored image with its asset reference resolved to a URL.
type Image struct {
	Asset *ImageAsset `json:"asset,omitempty"`
}

// ImageAsset identifies a binary asset in the document store.
type ImageAsset struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// Summary is the list projection of a design style.
type Summary struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// Style is the full detail projection of a design style document.
//
// Styles are authored by CMS operators and are read-only from the API's
// perspective; nothing in this service ever mutates one.
type Style struct {
	ID                   string   `json:"_id"`
	Title                string   `json:"title"`
	Slug                 string   `json:"slug"`
	Description          string   `json:"description,omitempty"`
	HistoricalBackground string   `json:"historicalBackground,omitempty"`
	ColorPalette         []string `json:"colorPalette,omitempty"`
	Typography           string   `json:"typography,omitempty"`
	SampleImages         []Image  `json:"sampleImages,omitempty"`
}
