package kooora

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseLeaguePage extracts the league header, standings table and top
// scorers from a league page. Rows that do not have enough cells are skipped.
func parseLeaguePage(r io.Reader) (*LeaguePage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing league html: %w", err)
	}

	page := &LeaguePage{}

	page.Title = strings.TrimSpace(doc.Find("h1.league-title").First().Text())
	page.Country = strings.TrimSpace(doc.Find(".league-country").First().Text())
	if src, ok := doc.Find("img.league-logo").First().Attr("src"); ok {
		page.Logo = strings.TrimSpace(src)
	}

	if table := doc.Find("table#standings").First(); table.Length() > 0 {
		page.Table = parseStandings(table)
	}
	if table := doc.Find("table#scorers").First(); table.Length() > 0 {
		page.Scorers = parseScorers(table)
	}

	// A page with none of the league sections is the site's generic page, so
	// its <title> only names the league when something else was found.
	if page.Title == "" && (page.Table != nil || page.Scorers != nil) {
		page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return page, nil
}

func parseStandings(table *goquery.Selection) []TableRow {
	rows := make([]TableRow, 0)

	table.Find("tbody tr").Each(func(i int, s *goquery.Selection) {
		cells := cellTexts(s)
		if len(cells) < 10 {
			return
		}

		rows = append(rows, TableRow{
			Position:       atoi(cells[0]),
			Team:           cells[1],
			Played:         atoi(cells[2]),
			Won:            atoi(cells[3]),
			Drawn:          atoi(cells[4]),
			Lost:           atoi(cells[5]),
			GoalsFor:       atoi(cells[6]),
			GoalsAgainst:   atoi(cells[7]),
			GoalDifference: atoi(cells[8]),
			Points:         atoi(cells[9]),
		})
	})

	return rows
}

func parseScorers(table *goquery.Selection) []ScorerRow {
	rows := make([]ScorerRow, 0)

	table.Find("tbody tr").Each(func(i int, s *goquery.Selection) {
		cells := cellTexts(s)
		if len(cells) < 4 {
			return
		}

		rows = append(rows, ScorerRow{
			Rank:   atoi(cells[0]),
			Player: cells[1],
			Team:   cells[2],
			Goals:  atoi(cells[3]),
		})
	})

	return rows
}

func cellTexts(row *goquery.Selection) []string {
	cells := row.Find("td")
	texts := make([]string, 0, cells.Length())
	cells.Each(func(i int, c *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(c.Text()))
	})
	return texts
}

// atoi reads an integer cell, tolerating "+3" and a trailing "." on ranks
func atoi(s string) int {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "+"), ".")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
