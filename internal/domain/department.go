package domain

// Department is the closed set of valid department labels. Adding a
// department is a schema change; there is no dynamic registration.
type Department string

const (
	DepartmentEngineering           Department = "Engineering"
	DepartmentMarketing             Department = "Marketing"
	DepartmentFinance               Department = "Finance"
	DepartmentHumanResources        Department = "Human Resources"
	DepartmentSales                 Department = "Sales"
	DepartmentOperations            Department = "Operations"
	DepartmentInformationTechnology Department = "Information Technology"
	DepartmentLegal                 Department = "Legal"
	DepartmentCustomerService       Department = "Customer Service"
	DepartmentResearch              Department = "Research and Development"
)

var departments = []Department{
	DepartmentEngineering,
	DepartmentMarketing,
	DepartmentFinance,
	DepartmentHumanResources,
	DepartmentSales,
	DepartmentOperations,
	DepartmentInformationTechnology,
	DepartmentLegal,
	DepartmentCustomerService,
	DepartmentResearch,
}

// Departments returns all valid department labels in their stable order.
func Departments() []Department {
	out := make([]Department, len(departments))
	copy(out, departments)
	return out
}

// Valid reports whether d is a member of the closed set. Unknown strings
// are rejected rather than silently accepted.
func (d Department) Valid() bool {
	for _, dept := range departments {
		if d == dept {
			return true
		}
	}
	return false
}

func (d Department) String() string {
	return string(d)
}
