package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/pkg/dbmetrics"
)

type mockTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *mockTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *mockTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type mockBeginner struct {
	tx       *mockTx
	opts     *sql.TxOptions
	beginErr error
	calls    int
}

func (b *mockBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.calls++
	b.opts = opts
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestTransactionManager_Commit(t *testing.T) {
	b := &mockBeginner{tx: &mockTx{}}
	m := NewTransactionManager(b)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, b.tx.committed)
	assert.False(t, b.tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, b.opts.Isolation)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	b := &mockBeginner{tx: &mockTx{}}
	m := NewTransactionManager(b)
	fnErr := errors.New("slot taken")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.True(t, b.tx.rolledBack)
	assert.False(t, b.tx.committed)
}

func TestTransactionManager_BeginAndCommitErrors(t *testing.T) {
	m := NewTransactionManager(&mockBeginner{beginErr: errors.New("no conn")})
	err := m.DoReadOnly(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrTransaction)

	b := &mockBeginner{tx: &mockTx{commitErr: errors.New("serialization failure")}}
	m = NewTransactionManager(b)
	err = m.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrTransaction)
}

func TestTransactionManager_NestedReusesOuter(t *testing.T) {
	b := &mockBeginner{tx: &mockTx{}}
	m := NewTransactionManager(b)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.calls)
}
