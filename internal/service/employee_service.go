package service

import (
	"context"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
	"github.com/peopleops/employee-registry/internal/logger"
	"github.com/peopleops/employee-registry/internal/pagination"
	"github.com/peopleops/employee-registry/internal/search"
)

// EmployeeService coordinates validated records against the store and maps
// every failure into the stable outcome taxonomy.
type EmployeeService interface {
	Create(ctx context.Context, e domain.Employee) (*domain.Employee, error)
	Get(ctx context.Context, employeeID string) (*domain.Employee, error)
	List(ctx context.Context, department *domain.Department, p pagination.Params) (*domain.EmployeePage, error)
	Update(ctx context.Context, employeeID string, upd domain.EmployeeUpdate) (*domain.Employee, error)
	Delete(ctx context.Context, employeeID string) (string, error)
	Search(ctx context.Context, name string) ([]domain.Employee, error)
	ListAll(ctx context.Context) ([]domain.Employee, error)
}

type employeeService struct {
	repo   domain.EmployeeRepository
	search *search.Client // nil when search is disabled
}

// NewEmployeeService creates the service. searchClient may be nil; all
// search-index writes are best effort and never fail the store operation.
func NewEmployeeService(repo domain.EmployeeRepository, searchClient *search.Client) EmployeeService {
	return &employeeService{repo: repo, search: searchClient}
}

// Create inserts the record, relying entirely on the store's key constraint
// to resolve concurrent creates with the same id.
func (s *employeeService) Create(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	if err := s.repo.Insert(ctx, &e); err != nil {
		return nil, err
	}
	logger.InfoLog(ctx, "Created employee: %s", e.EmployeeID)

	s.indexEmployee(ctx, e)
	return &e, nil
}

func (s *employeeService) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, employeeID)
}

// List returns one page plus the total count of matching records. The count
// is computed independently of the window, so pages past the data return an
// empty list with a valid total.
func (s *employeeService) List(ctx context.Context, department *domain.Department, p pagination.Params) (*domain.EmployeePage, error) {
	total, err := s.repo.Count(ctx, department)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.List(ctx, domain.EmployeeFilter{
		Department: department,
		Offset:     p.Offset(),
		Limit:      p.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &domain.EmployeePage{
		TotalCount: total,
		Page:       p.Page,
		Limit:      p.Limit,
		Employees:  employees,
	}, nil
}

// Update is existence-checked first, then merges only the present fields.
// The check and the merge are two store calls, not one transaction: a delete
// racing this window can make the merge recreate the record (last writer
// wins) or the check report not_found. That window is accepted behavior.
func (s *employeeService) Update(ctx context.Context, employeeID string, upd domain.EmployeeUpdate) (*domain.Employee, error) {
	existing, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if upd.IsEmpty() {
		return nil, apperror.New(apperror.CodeNoFields,
			"no valid fields provided for update, provide at least one of: name, age, department")
	}

	upd.ApplyTo(existing)
	if err := s.repo.Put(ctx, existing); err != nil {
		return nil, err
	}
	logger.InfoLog(ctx, "Updated employee: %s", employeeID)

	// Re-read so the caller sees the stored record, not our merge buffer.
	updated, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	s.indexEmployee(ctx, *updated)
	return updated, nil
}

// Delete is existence-checked, then deletes. Same accepted race window as
// Update.
func (s *employeeService) Delete(ctx context.Context, employeeID string) (string, error) {
	if _, err := s.repo.GetByID(ctx, employeeID); err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return "", err
	}
	logger.InfoLog(ctx, "Deleted employee: %s", employeeID)

	if s.search != nil {
		if err := s.search.RemoveEmployee(ctx, employeeID); err != nil {
			logger.WarnLog(ctx, "Failed to remove employee %s from search index: %v", employeeID, err)
		}
	}
	return employeeID, nil
}

// Search queries the secondary name index.
func (s *employeeService) Search(ctx context.Context, name string) ([]domain.Employee, error) {
	if s.search == nil {
		return nil, apperror.New(apperror.CodeInternal, "search is not enabled")
	}

	employees, err := s.search.SearchByName(ctx, name)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "search failed", err)
	}
	return employees, nil
}

// ListAll walks the full listing in fixed windows; used by the export.
func (s *employeeService) ListAll(ctx context.Context) ([]domain.Employee, error) {
	const batch = 500

	var all []domain.Employee
	for offset := 0; ; offset += batch {
		page, err := s.repo.List(ctx, domain.EmployeeFilter{Offset: offset, Limit: batch})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < batch {
			return all, nil
		}
	}
}

func (s *employeeService) indexEmployee(ctx context.Context, e domain.Employee) {
	if s.search == nil {
		return
	}
	if err := s.search.IndexEmployee(ctx, e); err != nil {
		logger.WarnLog(ctx, "Failed to index employee %s: %v", e.EmployeeID, err)
	}
}
