package employees

import (
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/hrmkit/employee-console/modules/employees/infrastructure/directory"
	"github.com/hrmkit/employee-console/modules/employees/presentation/browser"
	"github.com/hrmkit/employee-console/modules/employees/presentation/controllers"
	"github.com/hrmkit/employee-console/modules/employees/presentation/editor"
	"github.com/hrmkit/employee-console/modules/employees/services"
	"github.com/hrmkit/employee-console/pkg/application"
	"github.com/hrmkit/employee-console/pkg/configuration"
	"github.com/hrmkit/employee-console/pkg/notify"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	clock := clockwork.NewRealClock()

	dir := directory.NewHTTPDirectory(
		&http.Client{Timeout: conf.Backend.Timeout},
		conf.Backend.BaseURL(),
	)
	svc := services.NewEmployeeService(dir, app.EventPublisher())
	app.RegisterServices(svc)

	toasts := notify.NewBus(app.EventPublisher(), conf.ToastDelay, clock)
	b := browser.New(svc, toasts, conf.PageSize)
	ed := editor.New(svc, toasts, clock, conf.DebounceWindow)

	app.RegisterControllers(
		controllers.NewEmployeeController(app, b),
		controllers.NewEditorController(app, ed),
		notify.NewController(toasts, "/notifications"),
	)

	return nil
}

func (m *Module) Name() string {
	return "employees"
}
