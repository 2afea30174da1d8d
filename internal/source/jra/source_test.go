package jra

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racing_analyzer/internal/domain"
)

type upstream struct {
	listing    string
	detail     string
	odds       string
	oddsStatus int

	mu      sync.Mutex
	queries []string
}

func (u *upstream) record(r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.queries = append(u.queries, r.URL.RawQuery)
}

func (u *upstream) seen() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.queries...)
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/race_list.html", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		_, _ = io.WriteString(w, u.listing)
	})
	mux.HandleFunc("/race/result.html", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		_, _ = io.WriteString(w, u.detail)
	})
	mux.HandleFunc("/odds/index.html", func(w http.ResponseWriter, r *http.Request) {
		u.record(r)
		if u.oddsStatus != 0 {
			w.WriteHeader(u.oddsStatus)
			return
		}
		_, _ = io.WriteString(w, u.odds)
	})
	return mux
}

func newTestSource(baseURL string) *Source {
	return New(Config{
		BaseURL:     baseURL + "/",
		Timeout:     time.Second,
		MaxAttempts: 2,
		RetryDelay:  time.Millisecond,
	}, nil, testLogger())
}

func TestSource_FetchListing(t *testing.T) {
	up := &upstream{listing: listingPage}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()

	src := newTestSource(srv.URL)
	defer src.Close()

	entries, err := src.FetchListing(context.Background(), time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, []string{"kaisai_date=20230501"}, up.seen())
	assert.Equal(t, SourceID, src.ID())
}

func TestSource_FetchDetail(t *testing.T) {
	up := &upstream{detail: detailPage(horseRow("1", "A", "100", "J", "470", "T"))}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()

	src := newTestSource(srv.URL)
	detail, err := src.FetchDetail(context.Background(), domain.RaceListingEntry{ExternalRaceID: "42", Venue: "東京", RaceNumber: 1})

	require.NoError(t, err)
	assert.Equal(t, "42", detail.ExternalRaceID)
	assert.Len(t, detail.Horses, 1)
	assert.Equal(t, []string{"race_id=42"}, up.seen())
}

func TestSource_FetchDetail_PropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestSource(srv.URL).FetchDetail(context.Background(), domain.RaceListingEntry{ExternalRaceID: "42"})

	_, ok := AsFetchError(err)
	assert.True(t, ok)
}

func TestSource_FetchOdds(t *testing.T) {
	up := &upstream{odds: `<table class="odds_table_01"><tr><th>h</th></tr><tr><td>1</td><td>A</td><td>3.4</td></tr></table>`}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()

	odds := newTestSource(srv.URL).FetchOdds(context.Background(), "42")

	assert.Equal(t, domain.OddsMap{1: 3.4}, odds)
}

func TestSource_FetchOdds_FailureDowngradesToEmpty(t *testing.T) {
	up := &upstream{oddsStatus: http.StatusServiceUnavailable}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()

	odds := newTestSource(srv.URL).FetchOdds(context.Background(), "42")

	assert.NotNil(t, odds)
	assert.Empty(t, odds)
	assert.Len(t, up.seen(), 2)
}

func TestSource_CloseIsRepeatable(t *testing.T) {
	src := newTestSource("http://127.0.0.1:0")

	assert.NotPanics(t, func() {
		src.Close()
		src.Close()
	})
}
