package database

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
	"github.com/peopleops/employee-registry/internal/logger"
	"github.com/peopleops/employee-registry/internal/search"
	"github.com/peopleops/employee-registry/internal/validation"
)

// SeedEmployee is one entry of the YAML seed file.
type SeedEmployee struct {
	EmployeeID string `yaml:"employee_id"`
	Name       string `yaml:"name"`
	Age        int    `yaml:"age"`
	Department string `yaml:"department"`
}

// SeedFile is the top-level YAML seed document.
type SeedFile struct {
	Employees []SeedEmployee `yaml:"employees"`
}

// DataSeeder loads employee records from a YAML file into the store, running
// each entry through the same validation the API applies.
type DataSeeder struct {
	repo      domain.EmployeeRepository
	search    *search.Client // nil when search is disabled
	validator *validation.Validator
}

func NewDataSeeder(repo domain.EmployeeRepository, searchClient *search.Client) *DataSeeder {
	return &DataSeeder{
		repo:      repo,
		search:    searchClient,
		validator: validation.New(),
	}
}

// SeedFromFile inserts every valid entry, skipping ids that already exist.
// It returns the number of records created.
func (ds *DataSeeder) SeedFromFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var created []domain.Employee
	for _, entry := range file.Employees {
		age := entry.Age
		emp, err := ds.validator.ValidateCreate(validation.CreateEmployeeRequest{
			EmployeeID: entry.EmployeeID,
			Name:       entry.Name,
			Age:        &age,
			Department: entry.Department,
		})
		if err != nil {
			return len(created), fmt.Errorf("invalid seed entry %q: %w", entry.EmployeeID, err)
		}

		if err := ds.repo.Insert(ctx, &emp); err != nil {
			if apperror.GetCode(err) == apperror.CodeConflict {
				logger.WarnLog(ctx, "Seed entry %s already exists, skipping", emp.EmployeeID)
				continue
			}
			return len(created), err
		}
		created = append(created, emp)
	}

	if ds.search != nil && len(created) > 0 {
		if err := ds.search.BulkIndexEmployees(ctx, created); err != nil {
			logger.WarnLog(ctx, "Failed to bulk index seeded employees: %v", err)
		}
	}

	logger.InfoLog(ctx, "Seeded %d employees from %s", len(created), path)
	return len(created), nil
}
