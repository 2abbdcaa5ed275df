package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
	"github.com/peopleops/employee-registry/internal/validation"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func validCreate() validation.CreateEmployeeRequest {
	return validation.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "Jane Doe",
		Age:        intPtr(30),
		Department: "Engineering",
	}
}

func TestValidateCreateOK(t *testing.T) {
	v := validation.New()

	emp, err := v.ValidateCreate(validCreate())
	require.NoError(t, err)

	assert.Equal(t, "EMP001", emp.EmployeeID)
	assert.Equal(t, "Jane Doe", emp.Name)
	assert.Equal(t, 30, emp.Age)
	assert.Equal(t, domain.DepartmentEngineering, emp.Department)
}

func TestValidateCreateTrimsName(t *testing.T) {
	v := validation.New()

	req := validCreate()
	req.Name = "  Jane  "
	emp, err := v.ValidateCreate(req)
	require.NoError(t, err)
	assert.Equal(t, "Jane", emp.Name)
}

func TestValidateCreateFailures(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name   string
		mutate func(*validation.CreateEmployeeRequest)
		field  string
	}{
		{"missing employee_id", func(r *validation.CreateEmployeeRequest) { r.EmployeeID = "" }, "employee_id"},
		{"employee_id too long", func(r *validation.CreateEmployeeRequest) { r.EmployeeID = strings.Repeat("a", 51) }, "employee_id"},
		{"employee_id bad charset", func(r *validation.CreateEmployeeRequest) { r.EmployeeID = "EMP 001!" }, "employee_id"},
		{"whitespace-only name", func(r *validation.CreateEmployeeRequest) { r.Name = "   " }, "name"},
		{"name too short", func(r *validation.CreateEmployeeRequest) { r.Name = "J" }, "name"},
		{"name too long", func(r *validation.CreateEmployeeRequest) { r.Name = strings.Repeat("j", 101) }, "name"},
		{"missing age", func(r *validation.CreateEmployeeRequest) { r.Age = nil }, "age"},
		{"age below minimum", func(r *validation.CreateEmployeeRequest) { r.Age = intPtr(17) }, "age"},
		{"age above maximum", func(r *validation.CreateEmployeeRequest) { r.Age = intPtr(101) }, "age"},
		{"department typo", func(r *validation.CreateEmployeeRequest) { r.Department = "Engneering" }, "department"},
		{"missing department", func(r *validation.CreateEmployeeRequest) { r.Department = "" }, "department"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)

			_, err := v.ValidateCreate(req)
			require.Error(t, err)
			assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
			assert.Contains(t, apperror.GetFields(err), tc.field)
		})
	}
}

func TestValidateCreateAgeBoundaries(t *testing.T) {
	v := validation.New()

	for _, age := range []int{18, 100} {
		req := validCreate()
		req.Age = intPtr(age)
		_, err := v.ValidateCreate(req)
		assert.NoError(t, err, "age %d must be accepted", age)
	}
}

func TestValidateCreateCollectsAllViolations(t *testing.T) {
	v := validation.New()

	_, err := v.ValidateCreate(validation.CreateEmployeeRequest{
		EmployeeID: "bad id!",
		Name:       "J",
		Age:        intPtr(17),
		Department: "Warp Drive",
	})
	require.Error(t, err)

	fields := apperror.GetFields(err)
	assert.Len(t, fields, 4)
}

func TestValidateUpdate(t *testing.T) {
	v := validation.New()

	t.Run("empty update passes through for the caller to decide", func(t *testing.T) {
		upd, err := v.ValidateUpdate(validation.UpdateEmployeeRequest{})
		require.NoError(t, err)
		assert.True(t, upd.IsEmpty())
	})

	t.Run("present fields are validated", func(t *testing.T) {
		_, err := v.ValidateUpdate(validation.UpdateEmployeeRequest{Age: intPtr(17)})
		require.Error(t, err)
		assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
	})

	t.Run("present name is trimmed", func(t *testing.T) {
		upd, err := v.ValidateUpdate(validation.UpdateEmployeeRequest{Name: strPtr("  Jane  ")})
		require.NoError(t, err)
		require.NotNil(t, upd.Name)
		assert.Equal(t, "Jane", *upd.Name)
	})

	t.Run("department membership is enforced", func(t *testing.T) {
		_, err := v.ValidateUpdate(validation.UpdateEmployeeRequest{Department: strPtr("Engneering")})
		require.Error(t, err)

		upd, err := v.ValidateUpdate(validation.UpdateEmployeeRequest{Department: strPtr("Engineering")})
		require.NoError(t, err)
		require.NotNil(t, upd.Department)
		assert.Equal(t, domain.DepartmentEngineering, *upd.Department)
	})
}
