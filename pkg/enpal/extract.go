package enpal

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract parses a deviceMessages HTML document and returns one reading per
// recognizable table row. Rows live under table > tbody; the first cell is
// the row name, the second the raw value. Rows with fewer than two cells or
// whose value cell carries no quantity are skipped. When the same row name
// appears twice, the later row wins. Malformed markup is handled best-effort
// by the DOM parser; no single row is fatal.
func Extract(html string) (Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{}
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		reading := Normalize(ParseValue(strings.TrimSpace(cells.Eq(1).Text())))
		if !reading.HasValue {
			return
		}
		snapshot[name] = reading
	})

	return snapshot, nil
}
