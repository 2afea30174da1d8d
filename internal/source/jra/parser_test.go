package jra

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racing_analyzer/internal/domain"
)

const listingPage = `<html><body>
<div class="race_table">
  <div class="race_place">東京</div>
  <table>
    <tr class="race_data"><td class="race_num">1R</td><td><a href="race/result.html?race_id=202305010101">詳細</a></td></tr>
    <tr class="race_data"><td>no number</td><td><a href="race/result.html?race_id=202305010102">詳細</a></td></tr>
    <tr class="race_data"><td class="race_num">2R</td><td>no link</td></tr>
    <tr class="race_data"><td class="race_num">3R</td><td><a href="race/result.html?race_id=202305010103">詳細</a></td></tr>
  </table>
</div>
<div class="race_table">
  <div class="race_place">京都</div>
  <table>
    <tr class="race_data"><td class="race_num">未定</td><td><a href="race/result.html?race_id=202305020110">詳細</a></td></tr>
    <tr class="race_data"><td class="race_num">11R</td><td><a href="race/result.html?race_id=202305020111">詳細</a></td></tr>
  </table>
</div>
<div class="race_table">
  <table>
    <tr class="race_data"><td class="race_num">1R</td><td><a href="race/result.html?race_id=999">詳細</a></td></tr>
  </table>
</div>
</body></html>`

func horseRow(number, name, horseID, jockey, weight, trainer string) string {
	link := name
	if horseID != "" {
		link = fmt.Sprintf(`<a href="/horse?horse_id=%s">%s</a>`, horseID, name)
	}
	return fmt.Sprintf(`<tr><td>1</td><td>%s</td><td>2</td><td>%s</td><td>牡3</td><td>57.0</td>`+
		`<td><a href="/jockey">%s</a></td><td>2:24.1</td><td>%s</td><td>1</td><td><a href="/trainer">%s</a></td></tr>`,
		number, link, jockey, weight, trainer)
}

func detailPage(rows ...string) string {
	return `<html><body>
<h2 class="race_name">東京優駿</h2>
<div class="race_condition">3歳 G1 芝2400m 天候:晴 / 馬場:良</div>
<div class="race_time">発走 15:40</div>
<table class="race_table_01">
<tr><th>着順</th><th>馬番</th><th>枠</th><th>馬名</th></tr>
` + strings.Join(rows, "\n") + `
</table>
</body></html>`
}

func TestParseListing(t *testing.T) {
	date := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	entries := ParseListing([]byte(listingPage), date)

	require.Len(t, entries, 3)
	assert.Equal(t, domain.RaceListingEntry{ExternalRaceID: "202305010101", Venue: "東京", RaceNumber: 1, RaceDate: date}, entries[0])
	assert.Equal(t, domain.RaceListingEntry{ExternalRaceID: "202305010103", Venue: "東京", RaceNumber: 3, RaceDate: date}, entries[1])
	assert.Equal(t, domain.RaceListingEntry{ExternalRaceID: "202305020111", Venue: "京都", RaceNumber: 11, RaceDate: date}, entries[2])
}

func TestParseListing_MissingRaceNumberSkipsOnlyThatRow(t *testing.T) {
	page := `<div class="race_table"><div class="race_place">中山</div><table>
<tr class="race_data"><td><a href="x?race_id=1">a</a></td></tr>
<tr class="race_data"><td class="race_num">5R</td><td><a href="x?race_id=2">b</a></td></tr>
</table></div>`

	entries := ParseListing([]byte(page), time.Time{})

	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].ExternalRaceID)
	assert.Equal(t, 5, entries[0].RaceNumber)
}

func TestParseListing_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseListing(nil, time.Time{}))
	assert.Empty(t, ParseListing([]byte("<<<not html"), time.Time{}))
}

func TestParseDetail(t *testing.T) {
	date := time.Date(2023, 5, 28, 0, 0, 0, 0, time.UTC)
	entry := domain.RaceListingEntry{ExternalRaceID: "202305280511", Venue: "東京", RaceNumber: 11, RaceDate: date}
	page := detailPage(
		horseRow("1", "タスティエーラ", "2020101234", "レーン", "488(+2)", "堀宣行"),
		horseRow("2", "ソールオリエンス", "2020105678", "横山武史", "計不", "手塚貴久"),
	)

	detail := ParseDetail([]byte(page), entry)

	assert.Equal(t, "202305280511", detail.ExternalRaceID)
	assert.Equal(t, date, detail.RaceDate)
	assert.Equal(t, "東京", detail.Venue)
	assert.Equal(t, 11, detail.RaceNumber)
	assert.Equal(t, "東京優駿", detail.RaceName)
	assert.Equal(t, "G1", detail.RaceClass)
	assert.Equal(t, domain.CourseTurf, detail.CourseType)
	assert.Equal(t, 2400, detail.DistanceMeters)
	assert.Equal(t, "晴", detail.Weather)
	assert.Equal(t, "良", detail.TrackCondition)
	require.NotNil(t, detail.StartTime)
	assert.Equal(t, time.Date(2023, 5, 28, 15, 40, 0, 0, domain.JST), *detail.StartTime)

	require.Len(t, detail.Horses, 2)
	first := detail.Horses[0]
	assert.Equal(t, "2020101234", first.ExternalHorseID)
	assert.Equal(t, "タスティエーラ", first.HorseName)
	assert.Equal(t, 1, first.HorseNumber)
	assert.Equal(t, "レーン", first.Jockey)
	assert.Equal(t, "堀宣行", first.Trainer)
	require.NotNil(t, first.WeightKg)
	assert.Equal(t, 488.0, *first.WeightKg)
	assert.Nil(t, first.WinOdds)

	assert.Nil(t, detail.Horses[1].WeightKg)
}

func TestParseDetail_Defaults(t *testing.T) {
	entry := domain.RaceListingEntry{ExternalRaceID: "1", Venue: "阪神", RaceNumber: 3}

	detail := ParseDetail([]byte(`<html><body><p>maintenance</p></body></html>`), entry)

	assert.Equal(t, "阪神 3R", detail.RaceName)
	assert.Equal(t, domain.Unknown, detail.RaceClass)
	assert.Equal(t, domain.CourseUnknown, detail.CourseType)
	assert.Zero(t, detail.DistanceMeters)
	assert.Equal(t, domain.Unknown, detail.Weather)
	assert.Equal(t, domain.Unknown, detail.TrackCondition)
	assert.Nil(t, detail.StartTime)
	assert.Empty(t, detail.Horses)
}

func TestParseDetail_DirtAndPartialCondition(t *testing.T) {
	page := `<div class="race_condition">ダート1200m 未勝利</div><div class="race_time">発走 99:99</div>`

	detail := ParseDetail([]byte(page), domain.RaceListingEntry{ExternalRaceID: "1"})

	assert.Equal(t, domain.CourseDirt, detail.CourseType)
	assert.Equal(t, 1200, detail.DistanceMeters)
	assert.Equal(t, "未勝利", detail.RaceClass)
	assert.Equal(t, domain.Unknown, detail.Weather)
	assert.Nil(t, detail.StartTime)
}

func TestParseDetail_SkipsUnreadableHorseRows(t *testing.T) {
	page := detailPage(
		horseRow("取消", "キャンセル", "2020100001", "騎手A", "480", "調教師A"),
		`<tr><td>1</td><td>2</td></tr>`,
		horseRow("7", "ナナシ", "", "騎手B", "", "調教師B"),
	)

	detail := ParseDetail([]byte(page), domain.RaceListingEntry{ExternalRaceID: "202301010101"})

	require.Len(t, detail.Horses, 1)
	horse := detail.Horses[0]
	assert.Equal(t, 7, horse.HorseNumber)
	assert.Equal(t, "ナナシ", horse.HorseName)
	assert.Equal(t, "202301010101-07", horse.ExternalHorseID)
	assert.Nil(t, horse.WeightKg)
}

func TestParseOdds(t *testing.T) {
	page := `<table class="odds_table_01">
<tr><th>馬番</th><th>馬名</th><th>単勝</th></tr>
<tr><td>1</td><td>A</td><td>2.5</td></tr>
<tr><td>2</td><td>B</td><td>1,234.5</td></tr>
<tr><td>3</td><td>C</td><td>取消</td></tr>
<tr><td>除外</td><td>D</td><td>10.0</td></tr>
<tr><td>5</td><td>E</td></tr>
<tr><td>6</td><td>F</td><td>NaN</td></tr>
</table>`

	odds := ParseOdds([]byte(page))

	assert.Equal(t, domain.OddsMap{1: 2.5, 2: 1234.5}, odds)
}

func TestParseOdds_NoTable(t *testing.T) {
	odds := ParseOdds([]byte(`<html></html>`))

	assert.NotNil(t, odds)
	assert.Empty(t, odds)
}
