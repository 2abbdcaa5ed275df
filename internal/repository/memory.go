package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
)

// memoryRepository is an in-process EmployeeRepository with the same error
// semantics as the datastore-backed one. It backs the test suites and the
// seeder's dry-run mode; uniqueness is enforced atomically under the mutex,
// mirroring the store-level insert constraint.
type memoryRepository struct {
	mu      sync.Mutex
	records map[string]domain.Employee
}

func NewMemoryRepository() domain.EmployeeRepository {
	return &memoryRepository{records: make(map[string]domain.Employee)}
}

func (r *memoryRepository) Insert(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[e.EmployeeID]; ok {
		return apperror.New(apperror.CodeConflict,
			fmt.Sprintf("employee with ID '%s' already exists", e.EmployeeID))
	}
	r.records[e.EmployeeID] = *e
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, employeeID string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.records[employeeID]
	if !ok {
		return nil, apperror.New(apperror.CodeNotFound,
			fmt.Sprintf("employee with ID '%s' not found", employeeID))
	}
	return &e, nil
}

func (r *memoryRepository) Put(_ context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[e.EmployeeID] = *e
	return nil
}

// Delete is silent on missing keys, like the datastore delete.
func (r *memoryRepository) Delete(_ context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, employeeID)
	return nil
}

func (r *memoryRepository) List(_ context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := r.matching(filter.Department)

	if filter.Offset >= len(matches) {
		return []domain.Employee{}, nil
	}
	matches = matches[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matches) {
		matches = matches[:filter.Limit]
	}
	return matches, nil
}

func (r *memoryRepository) Count(_ context.Context, department *domain.Department) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.matching(department)), nil
}

// matching returns the filtered records ordered by ascending employee_id.
// Callers must hold the mutex.
func (r *memoryRepository) matching(department *domain.Department) []domain.Employee {
	matches := make([]domain.Employee, 0, len(r.records))
	for _, e := range r.records {
		if department != nil && e.Department != *department {
			continue
		}
		matches = append(matches, e)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].EmployeeID < matches[j].EmployeeID
	})
	return matches
}
