package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	DB
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(context.Context) (Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	ok := &fakeDB{tx: &fakeTx{}}
	assert.NoError(t, WithTx(ctx, ok, func(Tx) error { return nil }))
	assert.True(t, ok.tx.committed)
	assert.False(t, ok.tx.rolledBack)

	boom := errors.New("boom")
	failed := &fakeDB{tx: &fakeTx{}}
	assert.ErrorIs(t, WithTx(ctx, failed, func(Tx) error { return boom }), boom)
	assert.False(t, failed.tx.committed)
	assert.True(t, failed.tx.rolledBack)

	commitFails := &fakeDB{tx: &fakeTx{commitErr: boom}}
	assert.ErrorIs(t, WithTx(ctx, commitFails, func(Tx) error { return nil }), boom)

	assert.ErrorIs(t, WithTx(ctx, &fakeDB{beginErr: boom}, func(Tx) error {
		t.Fatalf("fn must not run without a transaction")
		return nil
	}), boom)

	assert.Error(t, WithTx(ctx, nil, func(Tx) error { return nil }))
}
