package service

import (
	"sync"
	"testing"

	"github.com/finwise/finwise-backend/internal/domain"
	"github.com/finwise/finwise-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryService_GetOrCreate_AllocatesSessionID(t *testing.T) {
	svc := NewMemoryService()

	mem := svc.GetOrCreate("")

	assert.NotEmpty(t, mem.SessionID)

	again := svc.GetOrCreate(mem.SessionID)
	assert.Equal(t, mem.SessionID, again.SessionID)
}

func TestMemoryService_ReturnsIndependentCopies(t *testing.T) {
	svc := NewMemoryService()

	mem, err := svc.AddNote("", "first note")
	require.NoError(t, err)

	// Mutating a returned copy must not leak into the stored session.
	mem.Notes[0] = "tampered"
	mem.Transactions = append(mem.Transactions, testutil.Txn("2024-01-05", -50, "Uber ride"))

	stored, err := svc.Get(mem.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first note"}, stored.Notes)
	assert.Empty(t, stored.Transactions)
}

func TestMemoryService_ConcurrentAccess(t *testing.T) {
	svc := NewMemoryService()
	mem := svc.GetOrCreate("")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = svc.AddNote(mem.SessionID, "note")
				if got, err := svc.Get(mem.SessionID); err == nil {
					_ = len(got.Notes)
					_ = len(got.Transactions)
				}
				svc.RememberTransactions(mem.SessionID, []domain.Transaction{
					testutil.Txn("2024-01-05", -50, "Uber ride"),
				})
			}
		}()
	}
	wg.Wait()

	stored, err := svc.Get(mem.SessionID)
	require.NoError(t, err)
	assert.Len(t, stored.Notes, 8*50)
}

func TestMemoryService_RememberTransactions(t *testing.T) {
	svc := NewMemoryService()
	transactions := []domain.Transaction{testutil.Txn("2024-01-05", -50, "Uber ride")}

	sessionID := svc.RememberTransactions("", transactions)

	mem, err := svc.Get(sessionID)
	require.NoError(t, err)
	assert.Len(t, mem.Transactions, 1)
}

func TestMemoryService_Get_UnknownSession(t *testing.T) {
	svc := NewMemoryService()

	_, err := svc.Get("missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryService_AddNote(t *testing.T) {
	svc := NewMemoryService()

	mem, err := svc.AddNote("", "remind me about rent")
	require.NoError(t, err)
	assert.Equal(t, []string{"remind me about rent"}, mem.Notes)

	_, err = svc.AddNote(mem.SessionID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMemoryService_ClearDuringWrites(t *testing.T) {
	svc := NewMemoryService()
	mem := svc.GetOrCreate("")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = svc.AddNote(mem.SessionID, "note")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			svc.Clear(mem.SessionID)
		}
	}()
	wg.Wait()

	// A write issued after the racing clears must land and stay visible.
	final, err := svc.AddNote(mem.SessionID, "after")
	require.NoError(t, err)

	stored, err := svc.Get(final.SessionID)
	require.NoError(t, err)
	assert.Contains(t, stored.Notes, "after")
}

func TestMemoryService_Clear(t *testing.T) {
	svc := NewMemoryService()
	mem := svc.GetOrCreate("")

	svc.Clear(mem.SessionID)

	_, err := svc.Get(mem.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
