package app

import (
	"context"

	"github.com/felixbrock/matchadmin/internal/domain"
)

const interestsTable = "interests"

// InterestReader is what the pages need from the interests lookup list.
type InterestReader interface {
	GetAll(ctx context.Context) ([]domain.Interest, error)
}

// InterestAccessor reads the interests lookup list.
type InterestAccessor struct {
	DB TableQuerier
}

// GetAll returns every interest ordered by name. Store errors are returned
// unchanged.
func (a InterestAccessor) GetAll(ctx context.Context) ([]domain.Interest, error) {
	records, err := a.DB.Select(ctx, Query{
		Table:   interestsTable,
		Columns: []string{"id", "name"},
		OrderBy: "name",
	})

	if err != nil {
		return nil, err
	}

	interests, err := DecodeRows[domain.Interest](records)

	if err != nil {
		return nil, err
	}

	return interests, nil
}
