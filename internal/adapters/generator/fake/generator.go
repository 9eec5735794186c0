// Package fake は gofakeit を使ってハンドルと初期データを生成します。
package fake

import (
	"strings"
	"sync"

	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"github.com/brianvoe/gofakeit/v7"
)

const (
	minSalary = 30_000
	maxSalary = 250_000
	minAge    = 18
	maxAge    = 65
)

// Generator は employee.HandleGenerator の実装で、初期データの生成も行います。
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

var _ employee.HandleGenerator = (*Generator)(nil)

// New は Generator を生成します。seed が 0 の場合は毎回異なる値になります。
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// GenerateHandle はユーザー名風のハンドルを返します。
func (g *Generator) GenerateHandle() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strings.ToLower(g.faker.Username())
}

// Inputs は n 件分の社員作成入力を返します。
func (g *Generator) Inputs(n int) []*employee.CreateEmployeeInput {
	g.mu.Lock()
	defer g.mu.Unlock()

	inputs := make([]*employee.CreateEmployeeInput, 0, max(n, 0))
	for i := 0; i < n; i++ {
		salary := g.faker.IntRange(minSalary, maxSalary)
		inputs = append(inputs, &employee.CreateEmployeeInput{
			Name:   g.faker.Name(),
			Salary: &salary,
			Age:    g.faker.IntRange(minAge, maxAge),
			Title:  g.faker.JobTitle(),
		})
	}
	return inputs
}
