package employee

import "github.com/google/uuid"

// Employee は社員レコードです。ID と Email は作成後に変更されません。
type Employee struct {
	ID     uuid.UUID
	Name   string
	Salary int
	Age    int
	Title  string
	Email  string
}

// Clone はレコードのコピーを返します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}
