package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olivere/elastic/v7"

	"github.com/peopleops/employee-registry/internal/domain"
)

const employeeIndex = "employees"

// EmployeeDoc mirrors domain.Employee for ES storage.
type EmployeeDoc struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Department string `json:"department"`
}

// Client wraps the olivere/elastic client for the optional employee name
// index. All writes to it are best effort; the datastore stays the source
// of truth.
type Client struct {
	es *elastic.Client
}

// NewClient creates a client for Elasticsearch 7.x.
func NewClient(url string) (*Client, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false), // Essential when using Docker or cloud
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Client{es: client}, nil
}

func toDoc(e domain.Employee) EmployeeDoc {
	return EmployeeDoc{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Age:        e.Age,
		Department: e.Department.String(),
	}
}

func fromDoc(doc EmployeeDoc) domain.Employee {
	return domain.Employee{
		EmployeeID: doc.EmployeeID,
		Name:       doc.Name,
		Age:        doc.Age,
		Department: domain.Department(doc.Department),
	}
}

// IndexEmployee indexes an employee document using employee_id as ID.
func (c *Client) IndexEmployee(ctx context.Context, e domain.Employee) error {
	if c == nil || c.es == nil {
		return fmt.Errorf("search client is nil")
	}

	_, err := c.es.Index().
		Index(employeeIndex).
		Id(e.EmployeeID).
		BodyJson(toDoc(e)).
		Refresh("true"). // Make changes immediately searchable
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index employee %s: %w", e.EmployeeID, err)
	}
	return nil
}

// RemoveEmployee deletes the document for employeeID, ignoring absence.
func (c *Client) RemoveEmployee(ctx context.Context, employeeID string) error {
	if c == nil || c.es == nil {
		return fmt.Errorf("search client is nil")
	}

	_, err := c.es.Delete().
		Index(employeeIndex).
		Id(employeeID).
		Refresh("true").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return fmt.Errorf("failed to remove employee %s: %w", employeeID, err)
	}
	return nil
}

// SearchByName performs a full-text match on the name field.
func (c *Client) SearchByName(ctx context.Context, name string) ([]domain.Employee, error) {
	if c == nil || c.es == nil {
		return nil, fmt.Errorf("search client is nil")
	}

	query := elastic.NewMatchQuery("name", name)

	searchResult, err := c.es.Search().
		Index(employeeIndex).
		Query(query).
		Size(100).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	employees := make([]domain.Employee, 0, len(searchResult.Hits.Hits))
	for _, item := range searchResult.Hits.Hits {
		var doc EmployeeDoc
		if err := json.Unmarshal(item.Source, &doc); err != nil {
			continue
		}
		employees = append(employees, fromDoc(doc))
	}

	return employees, nil
}

// BulkIndexEmployees efficiently indexes multiple employees (seeding path).
func (c *Client) BulkIndexEmployees(ctx context.Context, employees []domain.Employee) error {
	if c == nil || c.es == nil {
		return fmt.Errorf("search client is nil")
	}

	bulkRequest := c.es.Bulk()
	for _, e := range employees {
		req := elastic.NewBulkIndexRequest().
			Index(employeeIndex).
			Id(e.EmployeeID).
			Doc(toDoc(e))
		bulkRequest = bulkRequest.Add(req)
	}

	if bulkRequest.NumberOfActions() == 0 {
		return nil
	}

	bulkResponse, err := bulkRequest.Refresh("true").Do(ctx)
	if err != nil {
		return fmt.Errorf("bulk index failed: %w", err)
	}

	if bulkResponse.Errors {
		for _, item := range bulkResponse.Items {
			for _, op := range item {
				if op.Error != nil {
					return fmt.Errorf("bulk item failed: %s", op.Error.Reason)
				}
			}
		}
	}

	return nil
}
