package csvfile

import (
	"context"
	"fmt"
	"os"

	"shelter-outcomes/internal/domain/outcomes"
)

// Source lee outcomes desde un CSV local.
type Source struct {
	Path string
}

func NewSource(path string) *Source {
	return &Source{Path: path}
}

func (s *Source) Name() string { return "file:" + s.Path }

func (s *Source) ReadRecords(ctx context.Context) ([]outcomes.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return outcomes.ReadCSV(s.Name(), f)
}
