package remote

import (
	"bytes"
	"context"
	"fmt"

	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/httpclient"
)

// Source descarga el CSV de outcomes por HTTP(S).
type Source struct {
	client *httpclient.Client
	url    string
}

func NewSource(client *httpclient.Client, url string) *Source {
	return &Source{client: client, url: url}
}

func (s *Source) Name() string { return s.url }

func (s *Source) ReadRecords(ctx context.Context) ([]outcomes.Record, error) {
	raw, err := s.client.Get(ctx, s.url, map[string]string{"Accept": "text/csv"})
	if err != nil {
		return nil, fmt.Errorf("fetch csv: %w", err)
	}
	return outcomes.ReadCSV(s.Name(), bytes.NewReader(raw))
}
