package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FetchesAndParsesCSV(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("outcome_age_days,datetime,outcome_type\n45,2020-03-01 09:00:00,Transfer\n"))
	}))
	defer ts.Close()

	ds, err := outcomes.Load(context.Background(), NewSource(httpclient.New(time.Second), ts.URL+"/data.csv"))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	r := ds.Record(0)
	assert.Equal(t, 2, r.AgeMonths) // 1.5 redondea a par
	assert.Equal(t, "March-2020", r.MonthYear)
}

func TestSource_UpstreamErrorIsLoadError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := outcomes.Load(context.Background(), NewSource(httpclient.New(time.Second), ts.URL))
	require.ErrorIs(t, err, outcomes.ErrLoad)

	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadGateway, he.StatusCode)
}
