package domain

// Employee represents a single employee document in the datastore.
// The entity is keyed by EmployeeID, so the internal datastore key never
// carries information that is not already part of the API representation.
type Employee struct {
	EmployeeID string     `datastore:"employee_id" json:"employee_id"`
	Name       string     `datastore:"name"        json:"name"`
	Age        int        `datastore:"age"         json:"age"`
	Department Department `datastore:"department"  json:"department"`
}

// EmployeeUpdate is the sparse update shape for PATCH requests. Every field
// is optional; nil means "leave untouched". EmployeeID is deliberately
// absent: it is immutable once created.
type EmployeeUpdate struct {
	Name       *string
	Age        *int
	Department *Department
}

// IsEmpty reports whether the update carries no fields at all.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Department == nil
}

// ApplyTo merges the present fields into e, leaving absent fields unchanged.
func (u EmployeeUpdate) ApplyTo(e *Employee) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Age != nil {
		e.Age = *u.Age
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
}

// EmployeeFilter defines criteria for listing employees.
type EmployeeFilter struct {
	Department *Department
	Offset     int
	Limit      int
}

// EmployeePage is one window of a filtered listing. TotalCount reflects all
// matching records, independent of the window.
type EmployeePage struct {
	TotalCount int        `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	Employees  []Employee `json:"employees"`
}
