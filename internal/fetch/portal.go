package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/campus-tools/schedfetch/internal/urlutil"
)

// PortalInfo summarizes a term's portal page without parsing the full
// subject structure. Used by the info command.
type PortalInfo struct {
	URL          string   `json:"url"`
	Term         string   `json:"term"`
	Year         int      `json:"year"`
	Title        string   `json:"title,omitempty"`
	SubjectLinks []string `json:"subject_links,omitempty"`
}

// PortalInfo fetches the portal page and extracts its title and the
// absolute subject links found under the schedule root.
func (f *Fetcher) PortalInfo(ctx context.Context) (*PortalInfo, error) {
	body, err := f.transport.Fetch(ctx, f.portal)
	if err != nil {
		return nil, fmt.Errorf("fetching portal: %w", err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing portal page: %w", err)
	}

	info := &PortalInfo{
		URL:   f.portal,
		Term:  f.term,
		Year:  f.year,
		Title: strings.Join(strings.Fields(doc.Find("title").First().Text()), " "),
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		abs := urlutil.Resolve(f.portal, href)
		if !strings.HasPrefix(abs, f.root) || abs == f.portal {
			return
		}
		if !seen[abs] {
			seen[abs] = true
			info.SubjectLinks = append(info.SubjectLinks, abs)
		}
	})

	return info, nil
}
