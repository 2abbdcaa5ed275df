package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
	"github.com/peopleops/employee-registry/internal/repository"
)

func TestMemoryInsertConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	e := domain.Employee{EmployeeID: "EMP001", Name: "Jane Doe", Age: 30, Department: domain.DepartmentEngineering}
	require.NoError(t, repo.Insert(ctx, &e))

	err := repo.Insert(ctx, &e)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
}

func TestMemoryGetNotFound(t *testing.T) {
	repo := repository.NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
}

func TestMemoryListWindowAndCount(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()

	for i := 0; i < 25; i++ {
		dept := domain.DepartmentEngineering
		if i%5 == 0 {
			dept = domain.DepartmentSales
		}
		e := domain.Employee{
			EmployeeID: fmt.Sprintf("EMP%03d", i),
			Name:       fmt.Sprintf("Employee %d", i),
			Age:        20 + i,
			Department: dept,
		}
		require.NoError(t, repo.Insert(ctx, &e))
	}

	total, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 25, total)

	sales := domain.DepartmentSales
	salesTotal, err := repo.Count(ctx, &sales)
	require.NoError(t, err)
	assert.Equal(t, 5, salesTotal)

	window, err := repo.List(ctx, domain.EmployeeFilter{Offset: 20, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, window, 5)

	// Deterministic order: ascending employee_id.
	first, err := repo.List(ctx, domain.EmployeeFilter{Offset: 0, Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "EMP000", first[0].EmployeeID)
	assert.Equal(t, "EMP001", first[1].EmployeeID)
	assert.Equal(t, "EMP002", first[2].EmployeeID)

	empty, err := repo.List(ctx, domain.EmployeeFilter{Offset: 30, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryDeleteSilentOnMissing(t *testing.T) {
	repo := repository.NewMemoryRepository()
	assert.NoError(t, repo.Delete(context.Background(), "missing"))
}
