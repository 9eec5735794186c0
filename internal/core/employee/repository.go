package employee

import (
	"context"

	"github.com/google/uuid"
)

// Repository は社員コレクションの抽象です。
type Repository interface {
	// Create はレコードを末尾に追加します。ID が過去に払い出し済みなら ErrIDAlreadyIssued を返します。
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	// FindByID は一致するレコードを返します。見つからない場合は (nil, nil) です。
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	// DeleteFirstByName は名前が大文字小文字を無視して一致する最初の 1 件を削除します。
	DeleteFirstByName(ctx context.Context, name string) (*Employee, bool, error)
	// FindByNames は match が true を返した名前を持つレコードをすべて、コレクション順で返します。
	FindByNames(ctx context.Context, match func(name string) bool) ([]*Employee, error)
	// MaxSalary はコレクションが空なら ErrNoEmployees を返します。
	MaxSalary(ctx context.Context) (int, error)
	// SortBySalaryDesc はコレクション自体を給与の降順に安定ソートし、先頭 limit 件を返します。
	SortBySalaryDesc(ctx context.Context, limit int) ([]*Employee, error)
}
