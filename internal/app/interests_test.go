package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixbrock/matchadmin/internal/domain"
)

type fakeQuerier struct {
	body  []byte
	err   error
	calls []Query
}

func (f *fakeQuerier) Select(_ context.Context, q Query) ([]byte, error) {
	f.calls = append(f.calls, q)
	return f.body, f.err
}

func TestInterestAccessorQuery(t *testing.T) {
	db := &fakeQuerier{body: []byte(`[]`)}

	_, err := InterestAccessor{DB: db}.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, db.calls, 1)
	assert.Equal(t, Query{Table: "interests", Columns: []string{"id", "name"}, OrderBy: "name"}, db.calls[0])
}

func TestInterestAccessorKeepsBackendOrder(t *testing.T) {
	db := &fakeQuerier{body: []byte(`[{"id":"1","name":"Art"},{"id":"2","name":"Yoga"}]`)}

	got, err := InterestAccessor{DB: db}.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Interest{{Id: "1", Name: "Art"}, {Id: "2", Name: "Yoga"}}, got)
}

func TestInterestAccessorDropsExtraColumns(t *testing.T) {
	db := &fakeQuerier{body: []byte(`[{"id":"7","name":"Hiking","created_at":"2024-01-01","active":true}]`)}

	got, err := InterestAccessor{DB: db}.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Interest{{Id: "7", Name: "Hiking"}}, got)
}

func TestInterestAccessorEmpty(t *testing.T) {
	for _, body := range []string{`[]`, `null`, ``} {
		db := &fakeQuerier{body: []byte(body)}

		got, err := InterestAccessor{DB: db}.GetAll(context.Background())

		require.NoError(t, err, "body %q", body)
		assert.NotNil(t, got, "body %q", body)
		assert.Empty(t, got, "body %q", body)
	}
}

type timeoutErr struct{ Message string }

func (e *timeoutErr) Error() string { return e.Message }

func TestInterestAccessorReturnsBackendErrorUnchanged(t *testing.T) {
	backendErr := &timeoutErr{Message: "network timeout"}
	db := &fakeQuerier{err: backendErr}

	got, err := InterestAccessor{DB: db}.GetAll(context.Background())

	assert.Nil(t, got)
	assert.Same(t, backendErr, err)
	assert.Len(t, db.calls, 1)
}

func TestInterestAccessorMalformedRows(t *testing.T) {
	db := &fakeQuerier{body: []byte(`{"id":"1"}`)}

	_, err := InterestAccessor{DB: db}.GetAll(context.Background())

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}
