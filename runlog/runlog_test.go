package runlog

import "context"
import "math"
import "path/filepath"
import "testing"
import "time"

import "github.com/google/uuid"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := open(t)
	ctx := context.Background()
	start := time.Date(2026, 10, 15, 9, 0, 0, 123, time.UTC)

	first := Run{
		Started:       start,
		Finished:      start.Add(time.Second),
		Dataset:       "column",
		Clauses:       50,
		MaxActivation: 30,
		S:             4,
		Threshold:     30,
		Features:      3,
		Seed:          math.MaxUint64,
		Epochs:        3,
		Correct:       8,
		Total:         8,
	}
	id, err := s.Record(ctx, first)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	second := first
	second.ID = uuid.New()
	second.Dataset = "xor"
	second.Started = start.Add(time.Hour)
	_, err = s.Record(ctx, second)
	require.NoError(t, err)

	runs, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, "xor", runs[0].Dataset)
	assert.Equal(t, id, runs[1].ID)
	assert.True(t, runs[1].Started.Equal(start))
	assert.Equal(t, uint64(math.MaxUint64), runs[1].Seed)
	assert.Equal(t, 8, runs[1].Correct)
	assert.Equal(t, 4.0, runs[1].S)

	runs, err = s.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestDuplicateID(t *testing.T) {
	s := open(t)
	r := Run{ID: uuid.New(), Dataset: "column"}
	_, err := s.Record(context.Background(), r)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), r)
	assert.Error(t, err)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), Run{Dataset: "column"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
