package domain

import "time"

type SyncStatus string

const (
	SyncSkipped        SyncStatus = "skipped"
	SyncNoData         SyncStatus = "no_data"
	SyncSuccess        SyncStatus = "success"
	SyncPartialFailure SyncStatus = "partial_failure"
	SyncFailure        SyncStatus = "failure"
)

type RaceOutcomeStatus string

const (
	RaceSucceeded RaceOutcomeStatus = "success"
	RaceFailed    RaceOutcomeStatus = "error"
)

// RaceOutcome is the result of syncing one listed race.
type RaceOutcome struct {
	ExternalRaceID string            `json:"race_id"`
	Venue          string            `json:"venue"`
	RaceNumber     int               `json:"race_number"`
	Status         RaceOutcomeStatus `json:"status"`
	Created        bool              `json:"created,omitempty"`
	Message        string            `json:"message,omitempty"`
}

// SyncSummary holds statistics about a sync operation.
type SyncSummary struct {
	TargetDate time.Time     `json:"target_date"`
	Status     SyncStatus    `json:"status"`
	Message    string        `json:"message"`
	Listed     int           `json:"listed"`
	Succeeded  int           `json:"succeeded"`
	Failed     int           `json:"failed"`
	Created    int           `json:"created"`
	Updated    int           `json:"updated"`
	Published  int           `json:"published"`
	Details    []RaceOutcome `json:"details,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// SaveResult is returned by the upsert engine for one race.
type SaveResult struct {
	Race          *Race
	Created       bool
	HorsesCreated int
	HorsesUpdated int
}

type SyncState struct {
	ID           int64      `db:"id"`
	TargetDate   time.Time  `db:"target_date"`
	LastSyncedAt time.Time  `db:"last_synced_at"`
	LastStatus   SyncStatus `db:"last_status"`
	Succeeded    int        `db:"succeeded"`
	Failed       int        `db:"failed"`
	TotalSynced  int64      `db:"total_synced"`
}
