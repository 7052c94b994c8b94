package shape

import "github.com/jstittsworth/puckdata/internal/upstream"

type Headline struct {
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	Published string `json:"published,omitempty"`
	URL       string `json:"url,omitempty"`
}

// News truncates ESPN headlines to limit.
func News(resp *upstream.NewsResponse, limit int) []Headline {
	out := []Headline{}
	if resp == nil {
		return out
	}
	for i, a := range resp.Articles {
		if limit > 0 && i >= limit {
			break
		}
		out = append(out, Headline{
			Title:     a.Headline,
			Summary:   a.Description,
			Published: a.Published,
			URL:       a.Links.Web.Href,
		})
	}
	return out
}
