package handler

import "github.com/peopleops/employee-registry/internal/domain"

// DepartmentsResponse lists the valid department labels.
type DepartmentsResponse struct {
	Departments []domain.Department `json:"departments"`
}

// SearchResponse carries name-search hits.
type SearchResponse struct {
	Employees []domain.Employee `json:"employees"`
}
