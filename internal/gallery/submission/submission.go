package submission

// Status is the moderation state of a gallery submission.
//
// The lifecycle is a three-state machine: every submission is created as
// [StatusSubmitted] and is moved exactly once, by moderator action, to one of
// the terminal states. No transition out of a terminal state is defined.
type Status string

const (
	// StatusSubmitted is the initial state of every public submission.
	StatusSubmitted Status = "submitted"
	// StatusApproved marks a submission visible on public projections.
	StatusApproved Status = "approved"
	// StatusRejected marks a submission hidden from all public projections.
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three recognized states.
func (s Status) Valid() bool {
	return s == StatusSubmitted || s == StatusApproved || s == StatusRejected
}

// StyleRef is the resolved style reference carried by list projections.
type StyleRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Asset identifies a binary screenshot asset in the document store.
type Asset struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// Screenshot is a stored image with its asset reference resolved to a URL.
// Screenshots are always stored by reference, never inlined.
type Screenshot struct {
	Asset *Asset `json:"asset,omitempty"`
}

// Submission is the projection of a gallery submission document.
type Submission struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Status      Status      `json:"status,omitempty"`
	Style       *StyleRef   `json:"style,omitempty"`
	Screenshot  *Screenshot `json:"screenshot,omitempty"`
}

// SubmitInput is the public submission payload.
//
// Style carries the referenced design style's document id; Screenshot carries
// a base64 image data URI that is decoded and ingested before the document is
// created.
type SubmitInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Style       string `json:"style"`
	URL         string `json:"url"`
	Screenshot  string `json:"screenshot"`
	Description string `json:"description"`
}
