package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newStore() (*Store, *storage.MemoryStorage) {
	mem := storage.NewMemoryStorage()
	return New(mem, testLogger()), mem
}

func TestLoad_EmptyOnFreshStore(t *testing.T) {
	s, _ := newStore()
	list, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
	require.NotNil(t, list)
}

func TestAdd_RecordFieldsFilled(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	rec, err := s.Add(ctx, ScanInput{ProductName: "AirPods", Price: "1,899 kr"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.Date)
	assert.False(t, rec.Timestamp.IsZero())

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "AirPods", list[0].ProductName)
	assert.Equal(t, "1,899 kr", list[0].Price)
}

func TestAdd_DefaultsForMissingFields(t *testing.T) {
	s, _ := newStore()

	rec, err := s.Add(context.Background(), ScanInput{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Product", rec.ProductName)
	assert.Equal(t, "N/A", rec.Price)
}

func TestAdd_NewestFirst(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Add(ctx, ScanInput{ProductName: fmt.Sprintf("p%d", i)}, nil)
		require.NoError(t, err)
	}

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "p2", list[0].ProductName)
	assert.Equal(t, "p1", list[1].ProductName)
	assert.Equal(t, "p0", list[2].ProductName)
}

func TestAdd_CapsAtMaxEntries(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	for i := 0; i < MaxEntries+5; i++ {
		_, err := s.Add(ctx, ScanInput{ProductName: fmt.Sprintf("p%d", i)}, nil)
		require.NoError(t, err)
	}

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, MaxEntries)
	// newest survives, the oldest five are gone
	assert.Equal(t, fmt.Sprintf("p%d", MaxEntries+4), list[0].ProductName)
	assert.Equal(t, "p5", list[len(list)-1].ProductName)
}

func TestAdd_InvokesEloCallback(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	var got int
	_, err := s.Add(ctx, ScanInput{ProductName: "x"}, func(ctx context.Context, inc int) error {
		got = inc
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, EloPerScan, got)
}

func TestAdd_EloCallbackErrorPropagatesButScanIsKept(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	boom := fmt.Errorf("boom")
	_, err := s.Add(ctx, ScanInput{ProductName: "x"}, func(ctx context.Context, inc int) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRemove_ById(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	rec, err := s.Add(ctx, ScanInput{ProductName: "keep"}, nil)
	require.NoError(t, err)
	victim, err := s.Add(ctx, ScanInput{ProductName: "drop"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, victim.ID))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestRemove_UnknownIdIsNoop(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	_, err := s.Add(ctx, ScanInput{ProductName: "a"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "no-such-id"))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestClear(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	_, err := s.Add(ctx, ScanInput{ProductName: "a"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestLoad_MalformedStartsEmpty(t *testing.T) {
	s, mem := newStore()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, storage.KeyScanHistory, []byte("[oops")))

	list, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
