//go:build integration

package postgres

import (
	"time"

	"racing_analyzer/internal/domain"
	"racing_analyzer/internal/service"
)

func (s *PostgresIntegrationSuite) raceUpsert() *service.RaceUpsert {
	return service.NewRaceUpsert(
		NewRaceStore(s.db),
		NewHorseStore(s.db),
		NewPastRaceStore(s.db),
		NewTransactionManager(s.db),
	)
}

func derbyDetail() *domain.RaceDetail {
	start := time.Date(2024, 5, 26, 6, 40, 0, 0, time.UTC)
	return &domain.RaceDetail{
		ExternalRaceID: "202405021211",
		RaceDate:       raceDay(),
		Venue:          "東京",
		RaceNumber:     11,
		RaceName:       "東京優駿",
		RaceClass:      "G1",
		CourseType:     domain.CourseTurf,
		DistanceMeters: 2400,
		Weather:        "晴",
		TrackCondition: "良",
		StartTime:      &start,
		Horses: []domain.HorseDetail{
			{ExternalHorseID: "2021105898", HorseName: "ダノンデサイル", HorseNumber: 5, Jockey: "横山典弘", Trainer: "安田翔伍", WeightKg: ptr(57.0)},
			{ExternalHorseID: "2021105616", HorseName: "ジャスティンミラノ", HorseNumber: 1, Jockey: "戸崎圭太", Trainer: "友道康夫", WeightKg: ptr(57.0)},
		},
	}
}

func (s *PostgresIntegrationSuite) TestRaceUpsert_RepeatedSaveKeepsRows() {
	upsert := s.raceUpsert()
	odds := domain.OddsMap{5: 46.6, 1: 2.2}

	first, err := upsert.SaveRace(s.ctx, derbyDetail(), odds)
	s.Require().NoError(err)
	s.True(first.Created)
	s.Equal(2, first.HorsesCreated)

	horsesBefore, err := NewHorseStore(s.db).ListByRace(s.ctx, first.Race.ID)
	s.Require().NoError(err)

	second, err := upsert.SaveRace(s.ctx, derbyDetail(), odds)
	s.Require().NoError(err)
	s.False(second.Created)
	s.Equal(0, second.HorsesCreated)
	s.Equal(2, second.HorsesUpdated)
	s.Equal(first.Race.ID, second.Race.ID)

	var raceCount int
	s.Require().NoError(s.db.GetContext(s.ctx, &raceCount, "SELECT COUNT(*) FROM races"))
	s.Equal(1, raceCount)

	horsesAfter, err := NewHorseStore(s.db).ListByRace(s.ctx, first.Race.ID)
	s.Require().NoError(err)
	s.Require().Len(horsesAfter, len(horsesBefore))
	for i := range horsesAfter {
		s.Equal(horsesBefore[i].ID, horsesAfter[i].ID)
		s.Equal(horsesBefore[i].HorseName, horsesAfter[i].HorseName)
		s.Equal(*horsesBefore[i].Odds, *horsesAfter[i].Odds)
	}
}

func (s *PostgresIntegrationSuite) TestRaceUpsert_MissingOddsKeepStoredValue() {
	upsert := s.raceUpsert()

	first, err := upsert.SaveRace(s.ctx, derbyDetail(), domain.OddsMap{5: 46.6, 1: 2.2})
	s.Require().NoError(err)

	_, err = upsert.SaveRace(s.ctx, derbyDetail(), domain.OddsMap{1: 2.4})
	s.Require().NoError(err)

	horses, err := NewHorseStore(s.db).ListByRace(s.ctx, first.Race.ID)
	s.Require().NoError(err)
	byNumber := make(map[int]domain.Horse, len(horses))
	for _, h := range horses {
		byNumber[h.HorseNumber] = h
	}
	s.Require().NotNil(byNumber[1].Odds)
	s.Equal(2.4, *byNumber[1].Odds)
	s.Require().NotNil(byNumber[5].Odds)
	s.Equal(46.6, *byNumber[5].Odds)
}
