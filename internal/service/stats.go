package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"racing_analyzer/internal/domain"
)

// Stats categories that can be matched against a race.
const (
	CategoryVenue  = "venue"
	CategoryCourse = "course_type"
	CategoryClass  = "race_class"
)

const (
	// roiMargin is how far above the average ROI a condition must be.
	roiMargin     = 10.0
	minBetCount   = 30
	defaultAvgROI = 100.0
)

var recommendCategories = []string{CategoryVenue, CategoryCourse, CategoryClass}

type KPI struct {
	ROI         float64 `json:"roi"`
	WinRate     float64 `json:"win_rate"`
	BetCount    int64   `json:"bet_count"`
	TotalBet    int64   `json:"total_bet"`
	TotalPayout int64   `json:"total_payout"`
}

type MatchedCondition struct {
	Category  string  `json:"category"`
	Condition string  `json:"condition"`
	ROI       float64 `json:"roi"`
	BetCount  int     `json:"bet_count"`
	WinCount  int     `json:"win_count"`
}

type Recommendation struct {
	Race      domain.Race      `json:"race"`
	Condition MatchedCondition `json:"condition"`
}

type StatsService struct {
	races   RaceReader
	betting BettingReader
	stats   StatsReader
}

func NewStatsService(races RaceReader, betting BettingReader, stats StatsReader) *StatsService {
	return &StatsService{races: races, betting: betting, stats: stats}
}

func (s *StatsService) Stats(ctx context.Context, filter domain.StatsFilter) ([]domain.Stats, error) {
	return s.stats.List(ctx, filter)
}

func (s *StatsService) KPI(ctx context.Context, period domain.DateRange) (*KPI, error) {
	totals, err := s.betting.Totals(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("bet totals: %w", err)
	}
	return ComputeKPI(totals), nil
}

// ComputeKPI derives ROI and win rate as percentages rounded to two decimals.
// Empty denominators yield zero.
func ComputeKPI(t domain.BetTotals) *KPI {
	kpi := &KPI{
		BetCount:    t.BetCount,
		TotalBet:    t.TotalBet,
		TotalPayout: t.TotalPayout,
	}
	if t.TotalBet > 0 {
		kpi.ROI = round2(float64(t.TotalPayout) / float64(t.TotalBet) * 100)
	}
	if t.BetCount > 0 {
		kpi.WinRate = round2(float64(t.WinCount) / float64(t.BetCount) * 100)
	}
	return kpi
}

// Recommendations lists races on date that match a historically profitable
// condition, ordered by start time.
func (s *StatsService) Recommendations(ctx context.Context, date time.Time) ([]Recommendation, error) {
	avg, ok, err := s.stats.AverageROI(ctx)
	if err != nil {
		return nil, fmt.Errorf("average roi: %w", err)
	}
	if !ok {
		avg = defaultAvgROI
	}

	conditions, err := s.stats.ListQualifying(ctx, avg+roiMargin, minBetCount, recommendCategories)
	if err != nil {
		return nil, fmt.Errorf("qualifying stats: %w", err)
	}

	races, err := s.races.List(ctx, domain.RaceFilter{Date: &date})
	if err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}

	return MatchRecommendations(races, conditions), nil
}

// MatchRecommendations pairs each race with the first condition it satisfies.
// conditions are expected best ROI first, so the first match is the strongest.
func MatchRecommendations(races []domain.Race, conditions []domain.Stats) []Recommendation {
	recs := []Recommendation{}
	for _, race := range races {
		for _, c := range conditions {
			if !matches(race, c) {
				continue
			}
			recs = append(recs, Recommendation{
				Race: race,
				Condition: MatchedCondition{
					Category:  c.Category,
					Condition: c.Condition,
					ROI:       c.ROI,
					BetCount:  c.BetCount,
					WinCount:  c.WinCount,
				},
			})
			break
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i].Race.StartTime, recs[j].Race.StartTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return recs
}

func matches(race domain.Race, c domain.Stats) bool {
	switch c.Category {
	case CategoryVenue:
		return c.Condition == race.Venue
	case CategoryCourse:
		return c.Condition == string(race.CourseType)
	case CategoryClass:
		return c.Condition == race.RaceClass
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
