package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/rgolab/artid"
)

// Ensure SitemapService implements artid.SitemapService.
var _ artid.SitemapService = (*SitemapService)(nil)

// maxSitemapDepth bounds recursion through nested sitemap indexes.
const maxSitemapDepth = 5

// SitemapService discovers article URLs from a site's sitemaps via HTTP.
// News sites typically expose per-section or news sitemaps behind a
// sitemap index; indexes are resolved recursively.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: defaultUserAgent}
}

// DiscoverURLs finds all URLs from the site's sitemap, checking robots.txt
// for sitemap directives first and falling back to /sitemap.xml.
// Returns an empty slice (not nil) if no sitemaps are found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *artid.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, artid.Errorf(artid.EINVALID, "invalid base URL %q: %s", baseURL, err)
	}

	sitemapURLs, err := s.findSitemapURLs(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	var all []string
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sm := range sitemapURLs {
		urls, err := s.processSitemap(ctx, sm, seenSitemaps, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if seenURLs[u] || !filter.Match(u) {
				continue
			}
			seenURLs[u] = true
			all = append(all, u)
		}
	}

	if all == nil {
		all = []string{}
	}
	return all, nil
}

// findSitemapURLs reads Sitemap: directives from robots.txt, falling back
// to the conventional /sitemap.xml location.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})

	body, err := s.get(ctx, robotsURL.String())
	if err == nil {
		var sitemaps []string
		scanner := bufio.NewScanner(strings.NewReader(body))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
				if sm := strings.TrimSpace(line[len("sitemap:"):]); sm != "" {
					sitemaps = append(sitemaps, sm)
				}
			}
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if _, err := s.get(ctx, fallback.String()); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	return []string{fallback.String()}, nil
}

// processSitemap fetches and parses one sitemap document, recursing into
// sitemap indexes.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] || depth > maxSitemapDepth {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		// A broken child sitemap should not sink the whole discovery.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, nil
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	switch root.Tag {
	case "urlset":
		var urls []string
		for _, el := range root.SelectElements("url") {
			if loc := el.SelectElement("loc"); loc != nil {
				if u := strings.TrimSpace(loc.Text()); u != "" {
					urls = append(urls, u)
				}
			}
		}
		return urls, nil

	case "sitemapindex":
		var urls []string
		for _, el := range root.SelectElements("sitemap") {
			loc := el.SelectElement("loc")
			if loc == nil {
				continue
			}
			child, err := s.processSitemap(ctx, strings.TrimSpace(loc.Text()), seen, depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, child...)
		}
		return urls, nil
	}

	return nil, nil
}

func (s *SitemapService) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", artid.Errorf(artid.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
