package crawl

import (
	"context"

	"github.com/fwojciec/golazo"
	gq "github.com/fwojciec/golazo/goquery"
)

// ExcerptLength is the number of characters kept from a page's text.
const ExcerptLength = 200

// FindStreamCards fetches the stream listing page and extracts its cards.
func (s *Scraper) FindStreamCards(ctx context.Context) ([]*golazo.StreamCard, error) {
	doc, _, err := s.fetchDocument(ctx, s.StreamURL)
	if err != nil {
		return nil, err
	}
	return gq.ExtractStreamCards(doc), nil
}

// FindVideoFrames fetches every channel page and returns the embedded
// player URL of those that have one, in the order of paths.
func (s *Scraper) FindVideoFrames(ctx context.Context, paths []string) ([]*golazo.VideoFrame, error) {
	slots := make([]*golazo.VideoFrame, len(paths))
	s.fanOut(len(paths), func(i int) {
		url := joinURL(s.StreamURL, paths[i])
		doc, _, err := s.fetchDocument(ctx, url)
		if err != nil {
			s.logger().Error("channel page unavailable", "url", url, "err", err)
			return
		}
		src, ok := gq.ExtractVideoFrame(doc)
		if !ok {
			s.logger().Warn("video frame not found", "url", url)
			return
		}
		slots[i] = &golazo.VideoFrame{URL: url, VideoFrameURL: src}
	})
	return compact(slots), nil
}

// FindPageExcerpts fetches every channel page and returns the opening
// characters of its text, in the order of paths. The main content found
// by the Extractor is preferred over the whole document text.
func (s *Scraper) FindPageExcerpts(ctx context.Context, paths []string) ([]*golazo.PageExcerpt, error) {
	slots := make([]*golazo.PageExcerpt, len(paths))
	s.fanOut(len(paths), func(i int) {
		url := joinURL(s.StreamURL, paths[i])
		doc, html, err := s.fetchDocument(ctx, url)
		if err != nil {
			s.logger().Error("channel page unavailable", "url", url, "err", err)
			return
		}
		text := ""
		if s.Extractor != nil {
			if res, err := s.Extractor.Extract(html); err == nil {
				text = res.Text
			}
		}
		if text == "" {
			text = gq.PageText(doc)
		}
		slots[i] = &golazo.PageExcerpt{URL: url, ContentExcerpt: truncate(text, ExcerptLength)}
	})
	return compact(slots), nil
}

// compact drops the empty slots left by skipped pages.
func compact[T any](slots []*T) []*T {
	out := make([]*T, 0, len(slots))
	for _, v := range slots {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
