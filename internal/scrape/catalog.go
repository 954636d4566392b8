// Package scrape walks the public assessment catalog and produces the
// records the ingestion pipeline consumes.
package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// Defaults for the public catalog listing.
const (
	DefaultBaseURL  = "https://www.shl.com/products/product-catalog/"
	DefaultPages    = 32
	DefaultPageSize = 12

	userAgent = "shlrec-scraper/1.0"

	// presenceMarker is the filled circle the catalog table uses for
	// remote/adaptive support.
	presenceMarker = "●"
)

// Product is one scraped catalog entry. JSON tags match the ingest
// catalog file format.
type Product struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	TestType        string `json:"test_type"`
	RemoteSupport   string `json:"remote_support"`
	AdaptiveSupport string `json:"adaptive_support"`
	JobLevels       string `json:"job_levels,omitempty"`
	LongDescription string `json:"long_description,omitempty"`
}

// Scraper collects catalog rows from the paginated listing.
type Scraper struct {
	baseURL  string
	pages    int
	pageSize int
	delay    time.Duration
	logger   *zap.Logger
}

// New creates a Scraper with catalog defaults.
func New(logger *zap.Logger) *Scraper {
	return &Scraper{
		baseURL:  DefaultBaseURL,
		pages:    DefaultPages,
		pageSize: DefaultPageSize,
		delay:    1 * time.Second,
		logger:   logger,
	}
}

// WithBaseURL overrides the catalog URL.
func (s *Scraper) WithBaseURL(u string) *Scraper {
	s.baseURL = u
	return s
}

// WithPages overrides the page count. Values < 1 are ignored.
func (s *Scraper) WithPages(n int) *Scraper {
	if n >= 1 {
		s.pages = n
	}
	return s
}

// WithDelay overrides the per-request delay.
func (s *Scraper) WithDelay(d time.Duration) *Scraper {
	s.delay = d
	return s
}

// ScrapeCatalog visits every listing page and extracts product rows.
// A page that fails to load is logged and skipped; remaining pages are
// still visited.
func (s *Scraper) ScrapeCatalog() ([]Product, error) {
	c := colly.NewCollector(colly.UserAgent(userAgent))

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       s.delay,
	}); err != nil {
		return nil, fmt.Errorf("set limit rule: %w", err)
	}

	var products []Product

	c.OnHTML("tr[data-entity-id]", func(e *colly.HTMLElement) {
		p, ok := productFromRow(e.DOM, e.Request.AbsoluteURL)
		if !ok {
			return
		}
		products = append(products, p)
	})

	c.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("catalog page failed",
			zap.String("url", r.Request.URL.String()),
			zap.Error(err),
		)
	})

	for page := 0; page < s.pages; page++ {
		url := fmt.Sprintf("%s?start=%d&type=1", s.baseURL, page*s.pageSize)
		s.logger.Info("scraping catalog page",
			zap.Int("page", page+1),
			zap.String("url", url),
		)
		if err := c.Visit(url); err != nil {
			s.logger.Warn("visit failed", zap.String("url", url), zap.Error(err))
		}
	}

	s.logger.Info("catalog scrape complete", zap.Int("products", len(products)))
	return products, nil
}

// productFromRow parses one listing table row. Rows without the expected
// column layout or without a product link are skipped.
func productFromRow(row *goquery.Selection, absURL func(string) string) (Product, bool) {
	cols := row.Find("td")
	if cols.Length() < 4 {
		return Product{}, false
	}

	link := row.Find("td.custom__table-heading__title a").First()
	if link.Length() == 0 {
		return Product{}, false
	}

	name := strings.TrimSpace(link.Text())
	href, _ := link.Attr("href")
	if name == "" || href == "" {
		return Product{}, false
	}

	return Product{
		Name:            name,
		URL:             absURL(href),
		RemoteSupport:   markerToYesNo(cols.Eq(1)),
		AdaptiveSupport: markerToYesNo(cols.Eq(2)),
		TestType:        strings.TrimSpace(cols.Eq(3).Text()),
	}, true
}

func markerToYesNo(cell *goquery.Selection) string {
	if strings.Contains(cell.Text(), presenceMarker) {
		return "Yes"
	}
	return "No"
}
