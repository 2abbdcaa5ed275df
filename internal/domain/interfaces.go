package domain

import "context"

// EmployeeRepository defines the interface for employee data access.
//
// Insert must be atomic with respect to the uniqueness of EmployeeID: a
// duplicate insert fails at the store, never via check-then-insert. Delete
// does not report a missing record; existence checks belong to the caller.
type EmployeeRepository interface {
	Insert(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, employeeID string) (*Employee, error)
	Put(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, employeeID string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Count(ctx context.Context, department *Department) (int, error)
}
