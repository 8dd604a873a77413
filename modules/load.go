package modules

import (
	"github.com/hrmkit/employee-console/modules/employees"
	"github.com/hrmkit/employee-console/pkg/application"
)

var BuiltInModules = []application.Module{
	employees.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
		app.Logger().WithField("module", module.Name()).Info("module loaded")
	}
	return nil
}
