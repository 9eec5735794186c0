package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrReadOnlyTransaction は読み取り専用スコープ内で書き込みが呼ばれたことを表します。
var ErrReadOnlyTransaction = errors.New("memory: write inside read-only transaction")

type accessMode int

const (
	readOnly accessMode = iota + 1
	readWrite
)

// transactionContextKey はコンテキストにロック保持状態を格納するためのキーです。
type transactionContextKey struct{}

var txContextKey = transactionContextKey{}

type txState struct {
	store *store
	mode  accessMode
}

// TransactionManager はリポジトリのロックをスコープ単位で保持します。
type TransactionManager struct {
	store *store
}

// NewTransactionManager は repo と同じロックを共有する TransactionManager を生成します。
func NewTransactionManager(repo *EmployeeRepository) *TransactionManager {
	if repo == nil {
		return nil
	}
	return &TransactionManager{store: repo.store}
}

// WithinReadOnly は読み取りロックを保持したまま fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, readOnly, fn)
}

// WithinReadWrite は書き込みロックを保持したまま fn を実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, readWrite, fn)
}

func (m *TransactionManager) within(ctx context.Context, mode accessMode, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}

	if state, ok := txFromContext(ctx, m.store); ok {
		if mode == readWrite && state.mode == readOnly {
			return ErrReadOnlyTransaction
		}
		return fn(ctx)
	}

	var lock sync.Locker = &m.store.mu
	if mode == readOnly {
		lock = m.store.mu.RLocker()
	}
	lock.Lock()
	defer lock.Unlock()

	return fn(contextWithTx(ctx, &txState{store: m.store, mode: mode}))
}

func contextWithTx(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txContextKey, state)
}

// txFromContext は同じストアのロックをコンテキストが既に保持していれば、その状態を返します。
func txFromContext(ctx context.Context, s *store) (*txState, bool) {
	if ctx == nil {
		return nil, false
	}
	state, ok := ctx.Value(txContextKey).(*txState)
	if !ok || state.store != s {
		return nil, false
	}
	return state, true
}
