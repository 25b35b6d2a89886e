package models

// Quote is a single quote-of-the-day entry, either fetched from the remote
// quote API or drawn from the local fallback list.
type Quote struct {
	// Text is the quote body, without surrounding quotation marks.
	Text string `json:"quote"`

	// Author is the attributed author.
	Author string `json:"author"`
}
