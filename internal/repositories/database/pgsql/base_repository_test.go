package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

// stubTx overrides only the finishing methods; everything else panics if
// reached, which no test here does.
type stubTx struct {
	pgx.Tx
	commitErr   error
	rollbackErr error
}

func (s stubTx) Commit(_ context.Context) error   { return s.commitErr }
func (s stubTx) Rollback(_ context.Context) error { return s.rollbackErr }

func TestRollback_ToleratesFinishedTransaction(t *testing.T) {
	repo := &BaseRepository{}
	ctx := context.Background()

	assert.NoError(t, repo.Rollback(ctx, stubTx{rollbackErr: pgx.ErrTxClosed}))
	assert.NoError(t, repo.Rollback(ctx, stubTx{rollbackErr: sql.ErrTxDone}))
	assert.NoError(t, repo.Rollback(ctx, stubTx{}))
}

func TestRollback_PropagatesRealFailures(t *testing.T) {
	repo := &BaseRepository{}
	cause := errors.New("connection reset")

	err := repo.Rollback(context.Background(), stubTx{rollbackErr: cause})

	assert.ErrorIs(t, err, cause)
}

func TestCommit_WrapsFailure(t *testing.T) {
	repo := &BaseRepository{}
	cause := errors.New("broken pipe")

	assert.ErrorIs(t, repo.Commit(context.Background(), stubTx{commitErr: cause}), cause)
	assert.NoError(t, repo.Commit(context.Background(), stubTx{}))
}
