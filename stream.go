package golazo

import "context"

// StreamCard is a link card on the stream listing page.
type StreamCard struct {
	Link string `json:"link"`
	Text string `json:"text"`
}

// VideoFrame is the embedded player URL found on a channel page.
type VideoFrame struct {
	URL           string `json:"url"`
	VideoFrameURL string `json:"videoFrameUrl"`
}

// PageExcerpt is the opening text of a channel page.
type PageExcerpt struct {
	URL            string `json:"url"`
	ContentExcerpt string `json:"content_excerpt"`
}

// StreamService scrapes the live-stream site.
type StreamService interface {
	// FindStreamCards returns the link cards on the stream listing page.
	// Returns EUPSTREAM if the page cannot be fetched.
	FindStreamCards(ctx context.Context) ([]*StreamCard, error)

	// FindVideoFrames returns the player URL of every channel page that has one.
	// Pages that fail to load are skipped.
	FindVideoFrames(ctx context.Context, paths []string) ([]*VideoFrame, error)

	// FindPageExcerpts returns the opening text of every channel page that loads.
	FindPageExcerpts(ctx context.Context, paths []string) ([]*PageExcerpt, error)
}
