package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"github.com/google/uuid"
)

type store struct {
	mu        sync.RWMutex
	employees []*employee.Employee
	issued    map[uuid.UUID]struct{}
}

// EmployeeRepository はプロセス内メモリに社員を保持する Repository 実装です。
//
// 全操作は単一の RWMutex で保護されます。給与順ソートはコレクションを書き換えるため
// 書き込みロックを取ります。
type EmployeeRepository struct {
	store *store
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository は空のリポジトリを生成します。
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{store: &store{issued: make(map[uuid.UUID]struct{})}}
}

// Seed は既存レコードをそのまま末尾に追加します。払い出し済み ID は無視されます。
func (r *EmployeeRepository) Seed(records ...*employee.Employee) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, rec := range records {
		if rec == nil {
			continue
		}
		if _, ok := r.store.issued[rec.ID]; ok {
			continue
		}
		r.store.issued[rec.ID] = struct{}{}
		r.store.employees = append(r.store.employees, rec.Clone())
	}
}

// Len は現在の件数を返します。
func (r *EmployeeRepository) Len() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.employees)
}

// Create はレコードを末尾に追加します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	unlock, err := r.lockWrite(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, ok := r.store.issued[e.ID]; ok {
		return nil, employee.ErrIDAlreadyIssued
	}
	r.store.issued[e.ID] = struct{}{}

	stored := e.Clone()
	r.store.employees = append(r.store.employees, stored)
	return stored.Clone(), nil
}

// FindByID は線形走査で最初に一致したレコードを返します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	defer r.lockRead(ctx)()

	for _, e := range r.store.employees {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return nil, nil
}

// List は全レコードを現在の順序で返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	defer r.lockRead(ctx)()

	return cloneAll(r.store.employees), nil
}

// DeleteFirstByName は名前が大文字小文字を無視して一致する最初の 1 件を削除します。
func (r *EmployeeRepository) DeleteFirstByName(ctx context.Context, name string) (*employee.Employee, bool, error) {
	unlock, err := r.lockWrite(ctx)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	idx := slices.IndexFunc(r.store.employees, func(e *employee.Employee) bool {
		return strings.EqualFold(e.Name, name)
	})
	if idx < 0 {
		return nil, false, nil
	}

	removed := r.store.employees[idx]
	r.store.employees = slices.Delete(r.store.employees, idx, idx+1)
	return removed.Clone(), true, nil
}

// FindByNames は一致した名前の集合を作り、その集合に含まれる名前のレコードを順に返します。
func (r *EmployeeRepository) FindByNames(ctx context.Context, match func(name string) bool) ([]*employee.Employee, error) {
	defer r.lockRead(ctx)()

	names := make(map[string]struct{})
	for _, e := range r.store.employees {
		if _, seen := names[e.Name]; seen {
			continue
		}
		if match(e.Name) {
			names[e.Name] = struct{}{}
		}
	}

	result := make([]*employee.Employee, 0, len(names))
	for _, e := range r.store.employees {
		if _, ok := names[e.Name]; ok {
			result = append(result, e.Clone())
		}
	}
	return result, nil
}

// MaxSalary は最高給与を返します。
func (r *EmployeeRepository) MaxSalary(ctx context.Context) (int, error) {
	defer r.lockRead(ctx)()

	if len(r.store.employees) == 0 {
		return 0, employee.ErrNoEmployees
	}

	highest := r.store.employees[0].Salary
	for _, e := range r.store.employees[1:] {
		highest = max(highest, e.Salary)
	}
	return highest, nil
}

// SortBySalaryDesc はコレクションを給与の降順に安定ソートし、先頭 limit 件を返します。
func (r *EmployeeRepository) SortBySalaryDesc(ctx context.Context, limit int) ([]*employee.Employee, error) {
	unlock, err := r.lockWrite(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	slices.SortStableFunc(r.store.employees, func(a, b *employee.Employee) int {
		switch {
		case a.Salary > b.Salary:
			return -1
		case a.Salary < b.Salary:
			return 1
		default:
			return 0
		}
	})

	n := max(0, min(limit, len(r.store.employees)))
	return cloneAll(r.store.employees[:n]), nil
}

// lockRead はコンテキストがロックを保持していなければ読み取りロックを取ります。
func (r *EmployeeRepository) lockRead(ctx context.Context) func() {
	if _, ok := txFromContext(ctx, r.store); ok {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *EmployeeRepository) lockWrite(ctx context.Context) (func(), error) {
	if state, ok := txFromContext(ctx, r.store); ok {
		if state.mode == readOnly {
			return nil, ErrReadOnlyTransaction
		}
		return func() {}, nil
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock, nil
}

func cloneAll(in []*employee.Employee) []*employee.Employee {
	out := make([]*employee.Employee, 0, len(in))
	for _, e := range in {
		out = append(out, e.Clone())
	}
	return out
}
