package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"racing_analyzer/internal/config"
	"racing_analyzer/internal/domain"
	"racing_analyzer/internal/service/mocks"
	"racing_analyzer/internal/source/jra"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSource
	saver     *mocks.MockRaceSaver
	races     *mocks.MockRaceStore
	syncState *mocks.MockSyncStateStore
	publisher *mocks.MockPublisher

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
	date    time.Time
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.saver = mocks.NewMockRaceSaver(s.ctrl)
	s.races = mocks.NewMockRaceStore(s.ctrl)
	s.syncState = mocks.NewMockSyncStateStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.SyncConfig{Concurrency: 3}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.date = time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC)

	s.source.EXPECT().ID().Return("jra").AnyTimes()
	s.source.EXPECT().Name().Return("JRA").AnyTimes()

	s.service = NewSyncService(
		s.source,
		s.saver,
		s.races,
		s.syncState,
		s.publisher,
		nil,
		s.logger,
		s.cfg,
	)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) listing(n int) []domain.RaceListingEntry {
	ids := []string{"202405021201", "202405021202", "202405021203", "202405021204"}
	entries := make([]domain.RaceListingEntry, n)
	for i := range entries {
		entries[i] = domain.RaceListingEntry{
			ExternalRaceID: ids[i],
			Venue:          "東京",
			RaceNumber:     i + 1,
			RaceDate:       s.date,
		}
	}
	return entries
}

func detailFor(entry domain.RaceListingEntry) *domain.RaceDetail {
	return &domain.RaceDetail{
		ExternalRaceID: entry.ExternalRaceID,
		RaceDate:       entry.RaceDate,
		Venue:          entry.Venue,
		RaceNumber:     entry.RaceNumber,
		RaceName:       "未勝利",
		RaceClass:      "未勝利",
		CourseType:     domain.CourseTurf,
		Horses: []domain.HorseDetail{
			{ExternalHorseID: entry.ExternalRaceID + "-01", HorseNumber: 1},
			{ExternalHorseID: entry.ExternalRaceID + "-02", HorseNumber: 2},
		},
	}
}

type detailWithID string

func (m detailWithID) Matches(x any) bool {
	d, ok := x.(*domain.RaceDetail)
	return ok && d.ExternalRaceID == string(m)
}

func (m detailWithID) String() string {
	return "race detail " + string(m)
}

func savedFor(detail *domain.RaceDetail, created bool) *domain.SaveResult {
	return &domain.SaveResult{
		Race:    &domain.Race{ID: int64(detail.RaceNumber), ExternalRaceID: detail.ExternalRaceID},
		Created: created,
	}
}

func (s *SyncServiceTestSuite) expectSyncState(status domain.SyncStatus, succeeded int) {
	s.syncState.EXPECT().Get(gomock.Any(), s.date).Return(&domain.SyncState{TargetDate: s.date, TotalSynced: 5}, nil)
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			s.Equal(status, state.LastStatus)
			s.Equal(succeeded, state.Succeeded)
			s.Equal(int64(5+succeeded), state.TotalSynced)
			s.False(state.LastSyncedAt.IsZero())
			return nil
		},
	)
}

func (s *SyncServiceTestSuite) TestSyncDate_SkipsWhenRacesExist() {
	ctx := context.Background()

	s.races.EXPECT().CountByDate(ctx, s.date).Return(12, nil)
	s.source.EXPECT().Close().Times(1)

	summary, err := s.service.SyncDate(ctx, s.date, false)

	s.NoError(err)
	s.Equal(domain.SyncSkipped, summary.Status)
	s.Zero(summary.Listed)
	s.Empty(summary.Details)
}

func (s *SyncServiceTestSuite) TestSyncDate_CountFailure() {
	ctx := context.Background()

	s.races.EXPECT().CountByDate(ctx, s.date).Return(0, errors.New("connection refused"))
	s.source.EXPECT().Close()

	summary, err := s.service.SyncDate(ctx, s.date, false)

	s.Error(err)
	s.Nil(summary)
}

func (s *SyncServiceTestSuite) TestSyncDate_NoData() {
	ctx := context.Background()

	s.races.EXPECT().CountByDate(ctx, s.date).Return(0, nil)
	s.source.EXPECT().FetchListing(ctx, s.date).Return(nil, nil)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncNoData, 0)

	summary, err := s.service.SyncDate(ctx, s.date, false)

	s.NoError(err)
	s.Equal(domain.SyncNoData, summary.Status)
}

func (s *SyncServiceTestSuite) TestSyncDate_ListingFailureAborts() {
	ctx := context.Background()
	cause := &jra.FetchError{URL: "https://example.test/race_list.html", Kind: jra.Permanent, StatusCode: 503, Attempts: 3}

	s.source.EXPECT().FetchListing(ctx, s.date).Return(nil, cause)
	s.source.EXPECT().Close().Times(1)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Nil(summary)
	s.ErrorIs(err, domain.ErrSyncAborted)

	fetchErr, ok := jra.AsFetchError(err)
	s.True(ok)
	s.Equal(503, fetchErr.StatusCode)
}

func (s *SyncServiceTestSuite) TestSyncDate_AllSucceed() {
	ctx := context.Background()
	entries := s.listing(3)

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	for i, e := range entries {
		s.source.EXPECT().FetchDetail(ctx, e).Return(detailFor(e), nil)
		s.source.EXPECT().FetchOdds(ctx, e.ExternalRaceID).Return(domain.OddsMap{})
		created := i != 0
		s.saver.EXPECT().SaveRace(ctx, detailWithID(e.ExternalRaceID), domain.OddsMap{}).DoAndReturn(
			func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
				return savedFor(detail, created), nil
			},
		)
	}
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(3)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncSuccess, 3)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(3, summary.Listed)
	s.Equal(3, summary.Succeeded)
	s.Equal(2, summary.Created)
	s.Equal(1, summary.Updated)
	s.Equal(3, summary.Published)
	s.Require().Len(summary.Details, 3)
	for i, d := range summary.Details {
		s.Equal(entries[i].ExternalRaceID, d.ExternalRaceID)
		s.Equal(domain.RaceSucceeded, d.Status)
	}
}

func (s *SyncServiceTestSuite) TestSyncDate_PartialFailureIsolated() {
	ctx := context.Background()
	entries := s.listing(3)
	failing := entries[1]

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	for _, e := range entries {
		s.source.EXPECT().FetchOdds(ctx, e.ExternalRaceID).Return(domain.OddsMap{})
	}
	s.source.EXPECT().FetchDetail(ctx, entries[0]).Return(detailFor(entries[0]), nil)
	s.source.EXPECT().FetchDetail(ctx, failing).Return(nil, &jra.FetchError{Kind: jra.Permanent, StatusCode: 500, Attempts: 3})
	s.source.EXPECT().FetchDetail(ctx, entries[2]).Return(detailFor(entries[2]), nil)

	s.saver.EXPECT().SaveRace(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
			s.NotEqual(failing.ExternalRaceID, detail.ExternalRaceID)
			return savedFor(detail, true), nil
		},
	).Times(2)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil).Times(2)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncPartialFailure, 2)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Require().NoError(err)
	s.Equal(domain.SyncPartialFailure, summary.Status)
	s.Equal(2, summary.Succeeded)
	s.Equal(1, summary.Failed)

	var errorsSeen []domain.RaceOutcome
	for _, d := range summary.Details {
		if d.Status == domain.RaceFailed {
			errorsSeen = append(errorsSeen, d)
		}
	}
	s.Require().Len(errorsSeen, 1)
	s.Equal(failing.ExternalRaceID, errorsSeen[0].ExternalRaceID)
	s.Contains(errorsSeen[0].Message, "fetch detail")
}

func (s *SyncServiceTestSuite) TestSyncDate_SavePanicIsolatedToRace() {
	ctx := context.Background()
	entries := s.listing(3)
	panicking := entries[1]

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	for _, e := range entries {
		s.source.EXPECT().FetchOdds(ctx, e.ExternalRaceID).Return(domain.OddsMap{})
		s.source.EXPECT().FetchDetail(ctx, e).Return(detailFor(e), nil)
	}
	s.saver.EXPECT().SaveRace(ctx, detailWithID(panicking.ExternalRaceID), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.RaceDetail, domain.OddsMap) (*domain.SaveResult, error) {
			panic("boom")
		},
	)
	for _, e := range []domain.RaceListingEntry{entries[0], entries[2]} {
		s.saver.EXPECT().SaveRace(ctx, detailWithID(e.ExternalRaceID), gomock.Any()).DoAndReturn(
			func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
				return savedFor(detail, true), nil
			},
		)
	}
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil).Times(2)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncPartialFailure, 2)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Require().NoError(err)
	s.Equal(2, summary.Succeeded)
	s.Equal(1, summary.Failed)
	s.Equal(2, summary.Published)
	s.Equal(domain.RaceFailed, summary.Details[1].Status)
	s.Equal(panicking.ExternalRaceID, summary.Details[1].ExternalRaceID)
	s.Contains(summary.Details[1].Message, "race panicked: boom")
}

func (s *SyncServiceTestSuite) TestSyncDate_EmptyDetailIsRaceError() {
	ctx := context.Background()
	entries := s.listing(2)

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	for _, e := range entries {
		s.source.EXPECT().FetchOdds(ctx, e.ExternalRaceID).Return(nil)
	}
	s.source.EXPECT().FetchDetail(ctx, entries[0]).Return(nil, nil)
	s.source.EXPECT().FetchDetail(ctx, entries[1]).Return(detailFor(entries[1]), nil)
	s.saver.EXPECT().SaveRace(ctx, detailWithID(entries[1].ExternalRaceID), gomock.Any()).DoAndReturn(
		func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
			return savedFor(detail, false), nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), false).Return(nil)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncPartialFailure, 1)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Require().NoError(err)
	s.Equal(1, summary.Succeeded)
	s.Equal(1, summary.Failed)
	s.Equal(domain.RaceFailed, summary.Details[0].Status)
	s.Contains(summary.Details[0].Message, "empty detail")
}

func (s *SyncServiceTestSuite) TestSyncDate_AllFail() {
	ctx := context.Background()
	entries := s.listing(2)

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	for _, e := range entries {
		s.source.EXPECT().FetchOdds(ctx, e.ExternalRaceID).Return(domain.OddsMap{})
		s.source.EXPECT().FetchDetail(ctx, e).Return(detailFor(e), nil)
	}
	s.saver.EXPECT().SaveRace(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock detected")).Times(2)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncFailure, 0)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Require().NoError(err)
	s.Equal(domain.SyncFailure, summary.Status)
	s.Equal(2, summary.Failed)
	s.Zero(summary.Published)
}

func (s *SyncServiceTestSuite) TestSyncDate_MergesOddsBeforeSave() {
	ctx := context.Background()
	entries := s.listing(1)
	odds := domain.OddsMap{1: 2.5}

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	s.source.EXPECT().FetchDetail(ctx, entries[0]).Return(detailFor(entries[0]), nil)
	s.source.EXPECT().FetchOdds(ctx, entries[0].ExternalRaceID).Return(odds)
	s.saver.EXPECT().SaveRace(ctx, gomock.Any(), odds).DoAndReturn(
		func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
			s.Require().NotNil(detail.Horses[0].WinOdds)
			s.Equal(2.5, *detail.Horses[0].WinOdds)
			s.Nil(detail.Horses[1].WinOdds)
			return savedFor(detail, true), nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncSuccess, 1)

	_, err := s.service.SyncDate(ctx, s.date, true)
	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestSyncDate_PublishErrorDoesNotFailRace() {
	ctx := context.Background()
	entries := s.listing(1)

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	s.source.EXPECT().FetchDetail(ctx, entries[0]).Return(detailFor(entries[0]), nil)
	s.source.EXPECT().FetchOdds(ctx, entries[0].ExternalRaceID).Return(domain.OddsMap{})
	s.saver.EXPECT().SaveRace(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
			return savedFor(detail, false), nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), false).Return(errors.New("channel closed"))
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncSuccess, 1)

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.Require().NoError(err)
	s.Equal(domain.SyncSuccess, summary.Status)
	s.Equal(1, summary.Updated)
	s.Zero(summary.Published)
}

func (s *SyncServiceTestSuite) TestSyncDate_WithoutPublisher() {
	ctx := context.Background()
	entries := s.listing(1)
	svc := NewSyncService(s.source, s.saver, s.races, s.syncState, nil, nil, s.logger, s.cfg)

	s.source.EXPECT().FetchListing(ctx, s.date).Return(entries, nil)
	s.source.EXPECT().FetchDetail(ctx, entries[0]).Return(detailFor(entries[0]), nil)
	s.source.EXPECT().FetchOdds(ctx, entries[0].ExternalRaceID).Return(domain.OddsMap{})
	s.saver.EXPECT().SaveRace(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, detail *domain.RaceDetail, _ domain.OddsMap) (*domain.SaveResult, error) {
			return savedFor(detail, true), nil
		},
	)
	s.source.EXPECT().Close()
	s.expectSyncState(domain.SyncSuccess, 1)

	summary, err := svc.SyncDate(ctx, s.date, true)

	s.NoError(err)
	s.Equal(1, summary.Created)
}

func (s *SyncServiceTestSuite) TestSyncDate_SyncStateFailureKeepsSummary() {
	ctx := context.Background()

	s.source.EXPECT().FetchListing(ctx, s.date).Return([]domain.RaceListingEntry{}, nil)
	s.source.EXPECT().Close()
	s.syncState.EXPECT().Get(ctx, s.date).Return(nil, errors.New("relation does not exist"))

	summary, err := s.service.SyncDate(ctx, s.date, true)

	s.ErrorContains(err, "update sync state")
	s.Require().NotNil(summary)
	s.Equal(domain.SyncNoData, summary.Status)
}

func TestResolveStatus(t *testing.T) {
	cases := []struct {
		succeeded, failed int
		want              domain.SyncStatus
	}{
		{3, 0, domain.SyncSuccess},
		{2, 1, domain.SyncPartialFailure},
		{0, 3, domain.SyncFailure},
	}
	for _, c := range cases {
		if got := resolveStatus(c.succeeded, c.failed); got != c.want {
			t.Errorf("resolveStatus(%d, %d) = %s, want %s", c.succeeded, c.failed, got, c.want)
		}
	}
}
