package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/datastore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/database"
	"github.com/peopleops/employee-registry/internal/domain"
)

// opTimeout bounds every store round trip. The store client enforces nothing
// by itself, so the choice is made here, once.
const opTimeout = 10 * time.Second

type employeeRepository struct {
	store *database.Store
}

// NewEmployeeRepository creates a datastore-backed EmployeeRepository.
func NewEmployeeRepository(store *database.Store) domain.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) key(employeeID string) *datastore.Key {
	return datastore.NameKey(r.store.Kind(), employeeID, nil)
}

// Insert writes the record as a single insert mutation. The entity key is
// the employee_id, so two concurrent inserts with the same id are resolved
// atomically by the store: exactly one succeeds, the other gets a conflict.
func (r *employeeRepository) Insert(ctx context.Context, e *domain.Employee) error {
	client, err := r.store.Handle()
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "store unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := client.Mutate(ctx, datastore.NewInsert(r.key(e.EmployeeID), e)); err != nil {
		if isAlreadyExists(err) {
			return apperror.New(apperror.CodeConflict,
				fmt.Sprintf("employee with ID '%s' already exists", e.EmployeeID))
		}
		return apperror.Wrap(apperror.CodeInternal, "failed to insert employee", err)
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	client, err := r.store.Handle()
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "store unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var e domain.Employee
	if err := client.Get(ctx, r.key(employeeID), &e); err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return nil, apperror.New(apperror.CodeNotFound,
				fmt.Sprintf("employee with ID '%s' not found", employeeID))
		}
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to get employee", err)
	}
	return &e, nil
}

// Put overwrites the full record. Callers are responsible for the existence
// check; a put racing a delete recreates the record, which is the documented
// last-writer-wins behavior.
func (r *employeeRepository) Put(ctx context.Context, e *domain.Employee) error {
	client, err := r.store.Handle()
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "store unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := client.Put(ctx, r.key(e.EmployeeID), e); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "failed to update employee", err)
	}
	return nil
}

// Delete removes the record by key. Missing keys are not an error at this
// layer; the caller performs the existence check.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	client, err := r.store.Handle()
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "store unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := client.Delete(ctx, r.key(employeeID)); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "failed to delete employee", err)
	}
	return nil
}

// List returns one window of the filtered listing, ordered by ascending
// employee_id as the deterministic tie-break.
func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	client, err := r.store.Handle()
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "store unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	q := datastore.NewQuery(r.store.Kind())
	if filter.Department != nil {
		q = q.FilterField("department", "=", filter.Department.String())
	}
	q = q.Order("employee_id").Offset(filter.Offset).Limit(filter.Limit)

	var employees []domain.Employee
	if _, err := client.GetAll(ctx, q, &employees); err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to list employees", err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

// Count returns the number of records matching the filter, independent of
// any window.
func (r *employeeRepository) Count(ctx context.Context, department *domain.Department) (int, error) {
	client, err := r.store.Handle()
	if err != nil {
		return 0, apperror.Wrap(apperror.CodeInternal, "store unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	q := datastore.NewQuery(r.store.Kind())
	if department != nil {
		q = q.FilterField("department", "=", department.String())
	}

	count, err := client.Count(ctx, q)
	if err != nil {
		return 0, apperror.Wrap(apperror.CodeInternal, "failed to count employees", err)
	}
	return count, nil
}

// isAlreadyExists unwraps datastore mutation errors down to the grpc status
// carrying the duplicate-key rejection.
func isAlreadyExists(err error) bool {
	var merr datastore.MultiError
	if errors.As(err, &merr) {
		for _, e := range merr {
			if e != nil && status.Code(e) == codes.AlreadyExists {
				return true
			}
		}
		return false
	}
	return status.Code(err) == codes.AlreadyExists
}
