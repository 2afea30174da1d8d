package jra

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"racing_analyzer/internal/domain"
)

// The parsers below never fail: a field that cannot be matched falls back to
// its default and a row whose key number is unreadable is dropped.

var (
	raceIDPattern     = regexp.MustCompile(`race_id=([0-9]+)`)
	horseIDPattern    = regexp.MustCompile(`horse_id=([0-9]+)`)
	raceNumberPattern = regexp.MustCompile(`(\d+)R`)
	coursePattern     = regexp.MustCompile(`(芝|ダート)(\d+)m`)
	classPattern      = regexp.MustCompile(`(G\d|新馬|未勝利|\d勝クラス|オープン|\d+万下)`)
	weatherPattern    = regexp.MustCompile(`天候\s*[:：]\s*([^\s/|]+)`)
	trackPattern      = regexp.MustCompile(`馬場\s*[:：]\s*([^\s/|]+)`)
	startTimePattern  = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	weightPattern     = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseListing extracts the races scheduled on targetDate from a listing page.
func ParseListing(page []byte, targetDate time.Time) []domain.RaceListingEntry {
	doc := newDocument(page)

	var entries []domain.RaceListingEntry
	doc.Find(".race_table").Each(func(_ int, table *goquery.Selection) {
		venue := text(table.Find(".race_place").First())
		if venue == "" {
			return
		}

		table.Find("tr.race_data").Each(func(_ int, row *goquery.Selection) {
			href, ok := row.Find("a").First().Attr("href")
			if !ok {
				return
			}
			raceID := submatch(raceIDPattern, href)
			if raceID == "" {
				return
			}

			numCell := row.Find(".race_num").First()
			if numCell.Length() == 0 {
				return
			}
			raceNumber, err := strconv.Atoi(submatch(raceNumberPattern, text(numCell)))
			if err != nil {
				return
			}

			entries = append(entries, domain.RaceListingEntry{
				ExternalRaceID: raceID,
				Venue:          venue,
				RaceNumber:     raceNumber,
				RaceDate:       targetDate,
			})
		})
	})

	return entries
}

// ParseDetail extracts race conditions and entrants from a result page.
// Identity fields come from the listing entry the page was fetched for.
func ParseDetail(page []byte, entry domain.RaceListingEntry) domain.RaceDetail {
	doc := newDocument(page)

	detail := domain.RaceDetail{
		ExternalRaceID: entry.ExternalRaceID,
		RaceDate:       entry.RaceDate,
		Venue:          entry.Venue,
		RaceNumber:     entry.RaceNumber,
		RaceName:       fmt.Sprintf("%s %dR", entry.Venue, entry.RaceNumber),
		RaceClass:      domain.Unknown,
		CourseType:     domain.CourseUnknown,
		Weather:        domain.Unknown,
		TrackCondition: domain.Unknown,
	}

	if name := text(doc.Find(".race_name").First()); name != "" {
		detail.RaceName = name
	}

	condition := text(doc.Find(".race_condition").First())
	if m := coursePattern.FindStringSubmatch(condition); m != nil {
		detail.CourseType = courseType(m[1])
		if distance, err := strconv.Atoi(m[2]); err == nil {
			detail.DistanceMeters = distance
		}
	}
	if class := submatch(classPattern, condition); class != "" {
		detail.RaceClass = class
	}
	if weather := submatch(weatherPattern, condition); weather != "" {
		detail.Weather = weather
	}
	if track := submatch(trackPattern, condition); track != "" {
		detail.TrackCondition = track
	}

	detail.StartTime = parseStartTime(text(doc.Find(".race_time").First()), entry.RaceDate)
	detail.Horses = parseHorses(doc, entry.ExternalRaceID)

	return detail
}

// ParseOdds extracts win odds keyed by horse number.
func ParseOdds(page []byte) domain.OddsMap {
	doc := newDocument(page)
	odds := domain.OddsMap{}

	doc.Find(".odds_table_01").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 3 {
			return
		}

		number, ok := parseDigits(text(cols.Eq(0)))
		if !ok {
			return
		}

		raw := strings.ReplaceAll(text(cols.Eq(2)), ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return
		}

		odds[number] = value
	})

	return odds
}

func parseHorses(doc *goquery.Document, raceID string) []domain.HorseDetail {
	var horses []domain.HorseDetail

	doc.Find(".race_table_01").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cols := row.Find("td")
		if cols.Length() < 4 {
			return
		}

		number, ok := parseDigits(text(cols.Eq(1)))
		if !ok {
			return
		}

		nameCell := cols.Eq(3)
		nameLink := nameCell.Find("a").First()
		name := text(nameLink)
		if name == "" {
			name = text(nameCell)
		}
		href, _ := nameLink.Attr("href")
		horseID := submatch(horseIDPattern, href)
		if horseID == "" {
			horseID = fmt.Sprintf("%s-%02d", raceID, number)
		}

		horse := domain.HorseDetail{
			ExternalHorseID: horseID,
			HorseName:       name,
			HorseNumber:     number,
			Jockey:          linkText(cols.Eq(6)),
			Trainer:         linkText(cols.Eq(10)),
		}
		if w := weightPattern.FindString(text(cols.Eq(8))); w != "" {
			if weight, err := strconv.ParseFloat(w, 64); err == nil {
				horse.WeightKg = &weight
			}
		}

		horses = append(horses, horse)
	})

	return horses
}

func parseStartTime(raw string, raceDate time.Time) *time.Time {
	m := startTimePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return nil
	}
	t := time.Date(raceDate.Year(), raceDate.Month(), raceDate.Day(), hour, minute, 0, 0, domain.JST)
	return &t
}

func courseType(label string) domain.CourseType {
	switch label {
	case "芝":
		return domain.CourseTurf
	case "ダート":
		return domain.CourseDirt
	default:
		return domain.CourseUnknown
	}
}

func newDocument(page []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return doc
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func linkText(cell *goquery.Selection) string {
	if t := text(cell.Find("a").First()); t != "" {
		return t
	}
	return text(cell)
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
