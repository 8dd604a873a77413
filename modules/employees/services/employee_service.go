package services

import (
	"context"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/pkg/eventbus"
)

type EmployeeService struct {
	directory employee.Directory
	publisher eventbus.EventBus
}

func NewEmployeeService(directory employee.Directory, publisher eventbus.EventBus) *EmployeeService {
	return &EmployeeService{
		directory: directory,
		publisher: publisher,
	}
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return s.directory.List(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (employee.Employee, error) {
	return s.directory.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, data employee.CreateDTO) (employee.Employee, error) {
	created, err := s.directory.Create(ctx, data)
	if err != nil {
		return employee.Employee{}, err
	}
	s.publisher.Publish(employee.NewCreatedEvent(data, created))
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, data employee.UpdateDTO) (employee.Employee, error) {
	updated, err := s.directory.Update(ctx, id, data)
	if err != nil {
		return employee.Employee{}, err
	}
	s.publisher.Publish(employee.NewUpdatedEvent(data, updated))
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	entity, err := s.directory.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.directory.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(employee.NewDeletedEvent(entity))
	return nil
}

// CheckEmail reports whether the email is already taken by another record.
// excludeID carves out the record being edited so its own value never
// counts as a conflict.
func (s *EmployeeService) CheckEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return s.directory.CheckEmail(ctx, email, excludeID)
}

func (s *EmployeeService) CheckMobile(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	return s.directory.CheckMobile(ctx, mobile, excludeID)
}
