package employee

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TopTenLimit は高給取り一覧で返す最大件数です。
const TopTenLimit = 10

const (
	// DefaultEmailDomain は生成メールアドレスのドメインです。
	DefaultEmailDomain = "company.com"
	emailTemplate      = "%s@%s"
	maxIDAttempts      = 3
)

// HandleGenerator はメールアドレスのローカル部に使うハンドルを生成します。
type HandleGenerator interface {
	GenerateHandle() string
}

// IDGenerator は社員 ID を払い出します。
type IDGenerator interface {
	NewID() (uuid.UUID, error)
}

type randomIDGenerator struct{}

func (randomIDGenerator) NewID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

type idPrefixHandleGenerator struct{}

func (idPrefixHandleGenerator) GenerateHandle() string {
	return "employee." + strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// TransactionManager はコレクションに対する排他制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo        Repository
	handles     HandleGenerator
	ids         IDGenerator
	tx          TransactionManager
	emailDomain string
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	CreateEmployee(ctx context.Context, in *CreateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in *DeleteEmployeeInput) (bool, error)
	SearchEmployeesByName(ctx context.Context, fragment string) ([]*Employee, error)
	GetHighestSalary(ctx context.Context) (int, error)
	GetTopTenHighestEarningEmployees(ctx context.Context) ([]*Employee, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithEmailDomain は生成メールアドレスのドメインを差し替えます。
func WithEmailDomain(domain string) Option {
	return func(s *Service) {
		if d := strings.TrimSpace(domain); d != "" {
			s.emailDomain = d
		}
	}
}

// NewService は Service を生成します。
func NewService(repo Repository, handles HandleGenerator, ids IDGenerator, tx TransactionManager, opts ...Option) *Service {
	if handles == nil {
		handles = idPrefixHandleGenerator{}
	}
	if ids == nil {
		ids = randomIDGenerator{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{repo: repo, handles: handles, ids: ids, tx: tx, emailDomain: DefaultEmailDomain}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEmployeeInput は社員作成時の入力です。Salary は必須です。
type CreateEmployeeInput struct {
	Name   string
	Salary *int
	Age    int
	Title  string
}

// DeleteEmployeeInput は社員削除時の入力です。
type DeleteEmployeeInput struct {
	Name string
}

// GetEmployee は ID で社員を取得します。該当者がいない場合はエラーにせず nil を返します。
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}

	zerolog.Ctx(ctx).Info().Stringer("id", id).Msg("fetching employee by id")

	var found *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		emp, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = emp
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListEmployees は全社員をコレクション順に返します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee は新しい社員を末尾に追加します。同名の社員が既にいても作成します。
func (s *Service) CreateEmployee(ctx context.Context, in *CreateEmployeeInput) (*Employee, error) {
	if in == nil {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidName
	}
	if in.Salary == nil || *in.Salary < 0 {
		return nil, ErrInvalidSalary
	}

	email := fmt.Sprintf(emailTemplate, strings.ToLower(s.handles.GenerateHandle()), s.emailDomain)

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		for attempt := 0; attempt < maxIDAttempts; attempt++ {
			id, err := s.ids.NewID()
			if err != nil {
				return fmt.Errorf("employee: generate id: %w", err)
			}

			result, err := s.repo.Create(txCtx, &Employee{
				ID:     id,
				Name:   in.Name,
				Salary: *in.Salary,
				Age:    in.Age,
				Title:  in.Title,
				Email:  email,
			})
			if errors.Is(err, ErrIDAlreadyIssued) {
				continue
			}
			if err != nil {
				return err
			}
			created = result
			return nil
		}
		return fmt.Errorf("employee: %d attempts: %w", maxIDAttempts, ErrIDAlreadyIssued)
	}); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Stringer("id", created.ID).Str("email", created.Email).Msg("added employee")
	return created, nil
}

// DeleteEmployee は名前が一致する最初の社員を削除します。該当者がいなければ false を返します。
func (s *Service) DeleteEmployee(ctx context.Context, in *DeleteEmployeeInput) (bool, error) {
	if in == nil {
		return false, ErrInvalidInput
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Str("name", in.Name).Msg("deleting employee by name")

	var (
		removed *Employee
		ok      bool
	)
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, deleted, err := s.repo.DeleteFirstByName(txCtx, in.Name)
		if err != nil {
			return err
		}
		removed, ok = emp, deleted
		return nil
	}); err != nil {
		return false, err
	}

	if ok {
		logger.Debug().Stringer("id", removed.ID).Msg("removed employee")
	}
	return ok, nil
}

// SearchEmployeesByName は名前が fragment で始まる社員を返します。
//
// fragment は正規表現としてそのまま解釈されます。既存クライアントが正規表現を
// 送ってくるため互換性のためにエスケープしていません。信頼できない入力を渡す場合は
// 呼び出し側で regexp.QuoteMeta してください。
func (s *Service) SearchEmployeesByName(ctx context.Context, fragment string) ([]*Employee, error) {
	re, err := compileNamePattern(fragment)
	if err != nil {
		return nil, err
	}

	match := func(name string) bool {
		return re.MatchString(strings.ToLower(name))
	}

	var employees []*Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByNames(txCtx, match)
		if err != nil {
			return err
		}
		employees = result
		return nil
	}); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetHighestSalary は最高給与を返します。社員がいなければ ErrNoEmployees です。
func (s *Service) GetHighestSalary(ctx context.Context) (int, error) {
	var highest int
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		salary, err := s.repo.MaxSalary(txCtx)
		if err != nil {
			return err
		}
		highest = salary
		return nil
	}); err != nil {
		return 0, err
	}
	return highest, nil
}

// GetTopTenHighestEarningEmployees は給与上位 10 名を返します。
//
// コレクション自体が給与の降順に並び替えられ、以降の一覧取得もその順序になります。
func (s *Service) GetTopTenHighestEarningEmployees(ctx context.Context) ([]*Employee, error) {
	var top []*Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.SortBySalaryDesc(txCtx, TopTenLimit)
		if err != nil {
			return err
		}
		top = result
		return nil
	}); err != nil {
		return nil, err
	}
	return top, nil
}

// compileNamePattern は "<fragment>.*" を小文字化し、名前全体に対する一致として組み立てます。
func compileNamePattern(fragment string) (*regexp.Regexp, error) {
	pattern := strings.ToLower(fragment + ".*")
	// 単体でコンパイルできることを先に確かめ、括弧の閉じ忘れなどでアンカーが外れるのを防ぐ。
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}
