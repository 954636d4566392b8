package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// EnrichDetails visits each product page and fills in the long
// description and job levels. Pages that fail to load leave the
// product's detail fields empty; partial metadata is acceptable.
func (s *Scraper) EnrichDetails(products []Product) error {
	c := colly.NewCollector(colly.UserAgent(userAgent))

	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       s.delay,
	}); err != nil {
		return fmt.Errorf("set limit rule: %w", err)
	}

	byURL := make(map[string]*Product, len(products))
	for i := range products {
		byURL[products[i].URL] = &products[i]
	}

	c.OnHTML("html", func(e *colly.HTMLElement) {
		p, ok := byURL[e.Request.URL.String()]
		if !ok {
			return
		}
		p.LongDescription = sectionText(e.DOM, "Description")
		p.JobLevels = sectionText(e.DOM, "Job levels")
	})

	c.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("detail page failed",
			zap.String("url", r.Request.URL.String()),
			zap.Error(err),
		)
	})

	for i := range products {
		s.logger.Info("scraping details",
			zap.Int("index", i+1),
			zap.Int("total", len(products)),
			zap.String("name", products[i].Name),
		)
		if err := c.Visit(products[i].URL); err != nil {
			s.logger.Warn("visit failed", zap.String("url", products[i].URL), zap.Error(err))
		}
	}

	return nil
}

// sectionText returns the text of the first <p> following the <h4> with
// the given heading, empty when the section is absent.
func sectionText(doc *goquery.Selection, heading string) string {
	var out string
	doc.Find("h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.TrimSpace(h.Text()) != heading {
			return true
		}
		out = strings.TrimSpace(h.NextAllFiltered("p").First().Text())
		return false
	})
	return out
}
