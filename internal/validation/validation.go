package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
)

// CreateEmployeeRequest is the raw create payload. All four fields are
// required; Age is a pointer so an absent field is distinguishable from zero.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=50,employee_id"`
	Name       string `json:"name"        validate:"required,min=2,max=100"`
	Age        *int   `json:"age"         validate:"required,gte=18,lte=100"`
	Department string `json:"department"  validate:"required,department"`
}

// UpdateEmployeeRequest is the raw partial-update payload. Absent fields stay
// nil and are left untouched; present fields obey the same rules as create.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"       validate:"omitempty,min=2,max=100"`
	Age        *int    `json:"age"        validate:"omitempty,gte=18,lte=100"`
	Department *string `json:"department" validate:"omitempty,department"`
}

var employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validator turns raw payloads into validated domain records. It reports
// every violated constraint, not just the first.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report violations under the JSON field names callers actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// These panics only fire on a nil func or empty tag, never at runtime.
	if err := v.RegisterValidation("employee_id", validEmployeeID); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("department", validDepartment); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

func validEmployeeID(fl validator.FieldLevel) bool {
	return employeeIDPattern.MatchString(fl.Field().String())
}

func validDepartment(fl validator.FieldLevel) bool {
	return domain.Department(fl.Field().String()).Valid()
}

// ValidateCreate checks all four fields and returns the validated record.
// The name is trimmed before the length checks, so a whitespace-only name
// fails as required-but-missing.
func (v *Validator) ValidateCreate(req CreateEmployeeRequest) (domain.Employee, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := v.validate.Struct(req); err != nil {
		return domain.Employee{}, toValidationError(err)
	}

	return domain.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Age:        *req.Age,
		Department: domain.Department(req.Department),
	}, nil
}

// ValidateUpdate checks the present fields and returns the sparse update
// set. An update with zero present fields is returned as-is; the distinct
// no-fields outcome is decided by the caller after the existence check.
func (v *Validator) ValidateUpdate(req UpdateEmployeeRequest) (domain.EmployeeUpdate, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}

	if err := v.validate.Struct(req); err != nil {
		return domain.EmployeeUpdate{}, toValidationError(err)
	}

	upd := domain.EmployeeUpdate{
		Name: req.Name,
		Age:  req.Age,
	}
	if req.Department != nil {
		dept := domain.Department(*req.Department)
		upd.Department = &dept
	}
	return upd, nil
}

func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Wrap(apperror.CodeInternal, "validator failure", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = constraintMessage(fe)
	}
	return apperror.NewValidation("invalid employee payload", fields)
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "employee_id":
		return "must contain only letters, digits, underscores and hyphens"
	case "department":
		return "is not a valid department"
	default:
		return "is invalid"
	}
}
