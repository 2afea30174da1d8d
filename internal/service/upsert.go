package service

import (
	"context"
	"errors"
	"fmt"

	"racing_analyzer/internal/domain"
)

// RaceUpsert writes a merged race and its horses keyed by external ids. Each
// call runs in its own transaction, so a failure leaves no partial race.
type RaceUpsert struct {
	races     RaceStore
	horses    HorseStore
	pastRaces PastRaceStore
	txManager TransactionManager
}

func NewRaceUpsert(races RaceStore, horses HorseStore, pastRaces PastRaceStore, txManager TransactionManager) *RaceUpsert {
	return &RaceUpsert{
		races:     races,
		horses:    horses,
		pastRaces: pastRaces,
		txManager: txManager,
	}
}

func (u *RaceUpsert) SaveRace(ctx context.Context, detail *domain.RaceDetail, odds domain.OddsMap) (*domain.SaveResult, error) {
	var result *domain.SaveResult

	err := u.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		race, created, err := u.upsertRace(txCtx, detail)
		if err != nil {
			return err
		}

		res := &domain.SaveResult{Race: race, Created: created}
		for i := range detail.Horses {
			horseCreated, err := u.upsertHorse(txCtx, race.ID, &detail.Horses[i], odds)
			if err != nil {
				return err
			}
			if horseCreated {
				res.HorsesCreated++
			} else {
				res.HorsesUpdated++
			}
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *RaceUpsert) upsertRace(ctx context.Context, detail *domain.RaceDetail) (*domain.Race, bool, error) {
	race, err := u.races.FindByExternalID(ctx, detail.ExternalRaceID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		race = &domain.Race{ExternalRaceID: detail.ExternalRaceID}
		applyRaceDetail(race, detail)
		if err := u.races.Insert(ctx, race); err != nil {
			return nil, false, fmt.Errorf("insert race %s: %w", detail.ExternalRaceID, err)
		}
		return race, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("find race %s: %w", detail.ExternalRaceID, err)
	}

	applyRaceDetail(race, detail)
	if err := u.races.Update(ctx, race); err != nil {
		return nil, false, fmt.Errorf("update race %s: %w", detail.ExternalRaceID, err)
	}
	return race, false, nil
}

func (u *RaceUpsert) upsertHorse(ctx context.Context, raceID int64, detail *domain.HorseDetail, odds domain.OddsMap) (bool, error) {
	horse, err := u.horses.FindByRaceAndExternalID(ctx, raceID, detail.ExternalHorseID)
	created := false

	switch {
	case errors.Is(err, domain.ErrNotFound):
		horse = &domain.Horse{RaceID: raceID, ExternalHorseID: detail.ExternalHorseID}
		applyHorseDetail(horse, detail, oddsFor(detail, odds))
		if err := u.horses.Insert(ctx, horse); err != nil {
			return false, fmt.Errorf("insert horse %s: %w", detail.ExternalHorseID, err)
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("find horse %s: %w", detail.ExternalHorseID, err)
	default:
		applyHorseDetail(horse, detail, oddsFor(detail, odds))
		if err := u.horses.Update(ctx, horse); err != nil {
			return false, fmt.Errorf("update horse %s: %w", detail.ExternalHorseID, err)
		}
	}

	for _, p := range detail.PastRaces {
		if err := u.pastRaces.Insert(ctx, newPastRace(horse.ID, p)); err != nil {
			return false, fmt.Errorf("insert past race for horse %s: %w", detail.ExternalHorseID, err)
		}
	}
	return created, nil
}
