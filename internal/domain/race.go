package domain

import "time"

// CourseType is the racing surface of a race.
type CourseType string

const (
	CourseTurf    CourseType = "turf"
	CourseDirt    CourseType = "dirt"
	CourseUnknown CourseType = "unknown"
)

// Unknown is stored for categorical text that could not be extracted.
const Unknown = "unknown"

// RaceListingEntry is one race found on a day's listing page.
type RaceListingEntry struct {
	ExternalRaceID string
	Venue          string
	RaceNumber     int
	RaceDate       time.Time
}

// RaceDetail is a fully parsed race page with its entrants.
type RaceDetail struct {
	ExternalRaceID string
	RaceDate       time.Time
	Venue          string
	RaceNumber     int
	RaceName       string
	RaceClass      string
	CourseType     CourseType
	DistanceMeters int
	Weather        string
	TrackCondition string
	StartTime      *time.Time
	Horses         []HorseDetail
}

type HorseDetail struct {
	ExternalHorseID string
	HorseName       string
	HorseNumber     int
	Jockey          string
	Trainer         string
	WeightKg        *float64
	WinOdds         *float64
	PastRaces       []PastRace
}

// PastRace is one historical run of a horse as shown on the race card.
type PastRace struct {
	RaceDate        string
	Venue           string
	RaceName        string
	ResultOrder     *int
	HorseCount      *int
	Jockey          string
	Weight          *int
	CourseCondition *string
	Memo            *string
}

// OddsMap maps horse number to win odds.
type OddsMap map[int]float64

// MergeOdds attaches win odds to horses by horse number. Horses without a
// matching entry keep whatever odds they already carry.
func MergeOdds(horses []HorseDetail, odds OddsMap) {
	for i := range horses {
		if v, ok := odds[horses[i].HorseNumber]; ok {
			horses[i].WinOdds = &v
		}
	}
}

// JST is the timezone race cards and start times are published in.
var JST = time.FixedZone("JST", 9*60*60)

// RaceDay returns the JST calendar day of t as midnight UTC, the form target
// dates are carried in throughout the service.
func RaceDay(t time.Time) time.Time {
	y, m, d := t.In(JST).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseRaceDate parses a YYYY-MM-DD target date.
func ParseRaceDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
