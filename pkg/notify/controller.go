package notify

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hrmkit/employee-console/pkg/application"
	"github.com/hrmkit/employee-console/pkg/httpapi"
)

// Controller exposes the current toast state so the page banner can poll it.
type Controller struct {
	bus  *Bus
	path string
}

func NewController(bus *Bus, path string) application.Controller {
	if path == "" {
		path = "/notifications"
	}
	return &Controller{bus: bus, path: path}
}

func (c *Controller) Key() string {
	return c.path
}

func (c *Controller) Register(r *mux.Router) {
	r.HandleFunc(c.path, c.Current).Methods(http.MethodGet)
	r.HandleFunc(c.path, c.Dismiss).Methods(http.MethodDelete)
}

func (c *Controller) Current(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteJSON(w, http.StatusOK, c.bus.Current())
}

func (c *Controller) Dismiss(w http.ResponseWriter, r *http.Request) {
	c.bus.Hide()
	_ = httpapi.WriteJSON(w, http.StatusOK, c.bus.Current())
}
