package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Scraper struct {
	httpClient *http.Client
}

func New() *Scraper {
	return &Scraper{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NormalizeURL prepends http:// when the target carries no scheme.
func NormalizeURL(url string) string {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "http://" + url
	}
	return url
}

// FetchText downloads the page and returns its visible text with script and
// style content removed.
func (s *Scraper) FetchText(ctx context.Context, url string) (string, error) {
	url = NormalizeURL(url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("fetching %s returned status %d", url, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()

	text := doc.Text()
	// Collapse runs of whitespace left behind by removed markup.
	return strings.Join(strings.Fields(text), " "), nil
}
