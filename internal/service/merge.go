package service

import "racing_analyzer/internal/domain"

// applyRaceDetail copies the scraped race fields onto a stored race. Identity
// columns (ID, ExternalRaceID) and timestamps are never touched.
func applyRaceDetail(race *domain.Race, detail *domain.RaceDetail) {
	race.RaceDate = detail.RaceDate
	race.Venue = detail.Venue
	race.RaceNumber = detail.RaceNumber
	race.RaceName = detail.RaceName
	race.RaceClass = detail.RaceClass
	race.CourseType = detail.CourseType
	race.Distance = detail.DistanceMeters
	race.Weather = stringPtr(detail.Weather)
	race.TrackCondition = stringPtr(detail.TrackCondition)
	race.StartTime = detail.StartTime
}

// applyHorseDetail copies the scraped entry fields onto a stored horse. A nil
// odds value keeps whatever odds the horse already has.
func applyHorseDetail(horse *domain.Horse, detail *domain.HorseDetail, odds *float64) {
	horse.HorseName = detail.HorseName
	horse.HorseNumber = detail.HorseNumber
	horse.Jockey = detail.Jockey
	horse.Trainer = detail.Trainer
	horse.Weight = detail.WeightKg
	if odds != nil {
		horse.Odds = odds
	}
}

func newPastRace(horseID int64, p domain.PastRace) *domain.HorsePastRace {
	return &domain.HorsePastRace{
		HorseID:         horseID,
		RaceDate:        p.RaceDate,
		Venue:           p.Venue,
		RaceName:        p.RaceName,
		ResultOrder:     p.ResultOrder,
		HorseCount:      p.HorseCount,
		Jockey:          p.Jockey,
		Weight:          p.Weight,
		CourseCondition: p.CourseCondition,
		Memo:            p.Memo,
	}
}

// oddsFor prefers the odds page over odds already merged into the detail.
func oddsFor(horse *domain.HorseDetail, odds domain.OddsMap) *float64 {
	if v, ok := odds[horse.HorseNumber]; ok {
		return &v
	}
	return horse.WinOdds
}

func stringPtr(s string) *string {
	return &s
}
