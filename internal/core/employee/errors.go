package employee

import (
	"errors"
	"fmt"
)

// 呼び出し側は errors.Is でこの 2 種類を判別します。
var (
	ErrInvalidArgument = errors.New("employee: invalid argument")
	ErrNotFound        = errors.New("employee: not found")
)

var (
	ErrInvalidID       = fmt.Errorf("%w: id is required", ErrInvalidArgument)
	ErrInvalidInput    = fmt.Errorf("%w: input is required", ErrInvalidArgument)
	ErrInvalidName     = fmt.Errorf("%w: name is required", ErrInvalidArgument)
	ErrInvalidSalary   = fmt.Errorf("%w: salary must be a non-negative number", ErrInvalidArgument)
	ErrInvalidPattern  = fmt.Errorf("%w: name pattern does not compile", ErrInvalidArgument)
	ErrNoEmployees     = fmt.Errorf("%w: no employees found", ErrNotFound)
	ErrIDAlreadyIssued = errors.New("employee: id already issued")
)
