package domain

import "time"

type Race struct {
	ID             int64      `db:"id" json:"id"`
	ExternalRaceID string     `db:"external_race_id" json:"race_id"`
	RaceDate       time.Time  `db:"race_date" json:"race_date"`
	Venue          string     `db:"venue" json:"venue"`
	RaceNumber     int        `db:"race_number" json:"race_number"`
	RaceName       string     `db:"race_name" json:"race_name"`
	RaceClass      string     `db:"race_class" json:"race_class"`
	CourseType     CourseType `db:"course_type" json:"course_type"`
	Distance       int        `db:"distance" json:"distance"`
	Weather        *string    `db:"weather" json:"weather"`
	TrackCondition *string    `db:"track_condition" json:"track_condition"`
	StartTime      *time.Time `db:"start_time" json:"start_time"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

type Horse struct {
	ID                   int64     `db:"id" json:"id"`
	RaceID               int64     `db:"race_id" json:"race_id"`
	ExternalHorseID      string    `db:"external_horse_id" json:"horse_id"`
	HorseName            string    `db:"horse_name" json:"horse_name"`
	HorseNumber          int       `db:"horse_number" json:"horse_number"`
	Jockey               string    `db:"jockey" json:"jockey"`
	Trainer              string    `db:"trainer" json:"trainer"`
	Weight               *float64  `db:"weight" json:"weight"`
	Odds                 *float64  `db:"odds" json:"odds"`
	ResultOrder          *int      `db:"result_order" json:"result_order"`
	ResultTime           *float64  `db:"result_time" json:"result_time"`
	ResultMargin         *string   `db:"result_margin" json:"result_margin"`
	ResultCornerPosition *string   `db:"result_corner_position" json:"result_corner_position"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// HorsePastRace rows are append-only.
type HorsePastRace struct {
	ID              int64     `db:"id" json:"id"`
	HorseID         int64     `db:"horse_id" json:"horse_id"`
	RaceDate        string    `db:"race_date" json:"race_date"`
	Venue           string    `db:"venue" json:"venue"`
	RaceName        string    `db:"race_name" json:"race_name"`
	ResultOrder     *int      `db:"result_order" json:"result_order"`
	HorseCount      *int      `db:"horse_count" json:"horse_count"`
	Jockey          string    `db:"jockey" json:"jockey"`
	Weight          *int      `db:"weight" json:"weight"`
	CourseCondition *string   `db:"course_condition" json:"course_condition"`
	Memo            *string   `db:"memo" json:"memo"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	RaceID    int64     `db:"race_id" json:"race_id"`
	HorseID   int64     `db:"horse_id" json:"horse_id"`
	Content   string    `db:"content" json:"content"`
	IsPublic  bool      `db:"is_public" json:"is_public"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type BettingResult struct {
	ID         int64     `db:"id" json:"id"`
	RaceID     int64     `db:"race_id" json:"race_id"`
	BetType    string    `db:"bet_type" json:"bet_type"`
	BetNumbers string    `db:"bet_numbers" json:"bet_numbers"`
	Amount     int64     `db:"amount" json:"amount"`
	IsWon      bool      `db:"is_won" json:"is_won"`
	Payout     *int64    `db:"payout" json:"payout"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Stats is a rollup row produced by the offline statistics job.
type Stats struct {
	ID           int64     `db:"id" json:"id"`
	Category     string    `db:"category" json:"category"`
	Condition    string    `db:"condition" json:"condition"`
	BetCount     int       `db:"bet_count" json:"bet_count"`
	WinCount     int       `db:"win_count" json:"win_count"`
	TotalBet     int64     `db:"total_bet" json:"total_bet"`
	TotalPayout  int64     `db:"total_payout" json:"total_payout"`
	ROI          float64   `db:"roi" json:"roi"`
	CalculatedAt time.Time `db:"calculated_at" json:"calculated_at"`
}

type Feedback struct {
	ID          int64     `db:"id" json:"id"`
	Name        *string   `db:"name" json:"name"`
	Email       *string   `db:"email" json:"email"`
	Type        string    `db:"type" json:"type"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	AdminNotes  *string   `db:"admin_notes" json:"admin_notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BetTotals is the aggregate of betting results over a date range.
type BetTotals struct {
	TotalBet    int64 `db:"total_bet"`
	TotalPayout int64 `db:"total_payout"`
	BetCount    int64 `db:"bet_count"`
	WinCount    int64 `db:"win_count"`
}
