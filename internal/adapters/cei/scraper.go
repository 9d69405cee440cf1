// Package cei fetches the liturgy of the day from chiesacattolica.it and
// maps it to the Readings bundle. It is the external readings collaborator;
// the recommendation core never does I/O itself.
package cei

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mrparsing/suggerimento-canti/internal/adapters/htmltext"
	"github.com/mrparsing/suggerimento-canti/internal/domain/mass"
)

const (
	// DefaultBaseURL is the CEI daily liturgy site.
	DefaultBaseURL = "https://www.chiesacattolica.it"

	// DefaultTimeout bounds one fetch; the core has no timeout semantics of
	// its own, so it lives here.
	DefaultTimeout = 10 * time.Second
)

// Client scrapes daily readings. Safe for concurrent use.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

// New creates a scraper against baseURL (DefaultBaseURL when empty).
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Fetch retrieves and parses the readings for a date. Sections missing from
// the page leave their field empty; only transport and HTTP failures error.
func (c *Client) Fetch(ctx context.Context, date time.Time) (mass.Readings, error) {
	url := fmt.Sprintf("%s/liturgia-del-giorno/?data-liturgia=%s", c.base, date.Format("20060102"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return mass.Readings{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return mass.Readings{}, fmt.Errorf("fetch readings: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return mass.Readings{}, fmt.Errorf("fetch readings: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return mass.Readings{}, fmt.Errorf("parse readings page: %w", err)
	}

	r := parseReadings(doc)
	c.log.Debug("readings fetched", "url", url, "gospel", r.Gospel != "")
	return r, nil
}

// parseReadings maps the page's titled sections onto the bundle. Prefixes
// are matched longest-first so "Antifona alla comunione" is not swallowed by
// "Antifona".
func parseReadings(doc *goquery.Document) mass.Readings {
	var r mass.Readings
	sections := []struct {
		prefix    string
		dst       *string
		boldFirst bool
	}{
		{"Antifona alla comunione", &r.CommunionAntiphon, false},
		{"Antifona", &r.EntranceAntiphon, false},
		{"Acclamazione al Vangelo", &r.GospelVerse, false},
		{"Prima Lettura", &r.FirstReading, true},
		{"Salmo Responsoriale", &r.Psalm, false},
		{"Seconda Lettura", &r.SecondReading, true},
		{"Vangelo", &r.Gospel, true},
	}

	doc.Find("div.cci-liturgia-giorno-dettagli-content").Each(func(_ int, sec *goquery.Selection) {
		title := strings.TrimSpace(sec.Find("h2.cci-liturgia-giorno-section-title").First().Text())
		content := sec.Find("div.cci-liturgia-giorno-section-content").First()
		if title == "" || content.Length() == 0 {
			return
		}
		for _, s := range sections {
			if strings.HasPrefix(title, s.prefix) {
				html, err := goquery.OuterHtml(content)
				if err != nil {
					return
				}
				*s.dst = formatPassage(htmltext.Lines(html), s.boldFirst)
				return
			}
		}
	})
	return r
}

// formatPassage joins the passage lines with <br> and, for the readings and
// the gospel, bolds the first line (the scripture reference).
func formatPassage(lines []string, boldFirst bool) string {
	if len(lines) == 0 {
		return ""
	}
	if boldFirst && len(lines) > 1 {
		return "<strong>" + lines[0] + "</strong><br>" + strings.Join(lines[1:], "<br>")
	}
	return strings.Join(lines, "<br>")
}
