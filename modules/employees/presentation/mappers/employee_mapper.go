package mappers

import (
	"strconv"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/modules/employees/presentation/viewmodels"
)

func EmployeeToViewModel(e employee.Employee) *viewmodels.Employee {
	return &viewmodels.Employee{
		ID:          strconv.FormatUint(uint64(e.ID()), 10),
		FirstName:   e.FirstName(),
		LastName:    e.LastName(),
		FullName:    e.FullName(),
		DateOfBirth: e.DateOfBirth().Format(employee.DateLayout),
		Age:         strconv.Itoa(e.Age()),
		Mobile:      e.Mobile(),
		Email:       e.Email(),
		Address1:    e.Address1(),
		Address2:    e.Address2(),
		Gender:      string(e.Gender()),
	}
}

func EmployeesToViewModels(entities []employee.Employee) []*viewmodels.Employee {
	out := make([]*viewmodels.Employee, 0, len(entities))
	for _, e := range entities {
		out = append(out, EmployeeToViewModel(e))
	}
	return out
}
