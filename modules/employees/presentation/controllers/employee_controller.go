package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/modules/employees/presentation/browser"
	"github.com/hrmkit/employee-console/modules/employees/presentation/mappers"
	"github.com/hrmkit/employee-console/modules/employees/presentation/viewmodels"
	"github.com/hrmkit/employee-console/pkg/application"
	"github.com/hrmkit/employee-console/pkg/shared"
)

// EmployeeController exposes the list view as a gesture-level JSON API:
// every user action on the browser screen maps to one endpoint.
type EmployeeController struct {
	app      application.Application
	browser  *browser.Browser
	basePath string
}

func NewEmployeeController(app application.Application, b *browser.Browser) application.Controller {
	return &EmployeeController{
		app:      app,
		browser:  b,
		basePath: "/employees",
	}
}

func (c *EmployeeController) Key() string {
	return c.basePath
}

func (c *EmployeeController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.State).Methods(http.MethodGet)
	router.HandleFunc("/refresh", c.Refresh).Methods(http.MethodPost)
	router.HandleFunc("/search", c.Search).Methods(http.MethodPost)
	router.HandleFunc("/sort", c.Sort).Methods(http.MethodPost)
	router.HandleFunc("/page", c.Page).Methods(http.MethodPost)
	router.HandleFunc("/delete/confirm", c.ConfirmDelete).Methods(http.MethodPost)
	router.HandleFunc("/delete/cancel", c.CancelDelete).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/delete", c.RequestDelete).Methods(http.MethodPost)
}

type sortStateResponse struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

type browserStateResponse struct {
	Employees     []*viewmodels.Employee `json:"employees"`
	Query         string                 `json:"query"`
	Sort          *sortStateResponse     `json:"sort,omitempty"`
	Page          int                    `json:"page"`
	TotalPages    int                    `json:"totalPages"`
	Total         int                    `json:"total"`
	Loading       bool                   `json:"loading"`
	PendingDelete uint                   `json:"pendingDelete,omitempty"`
}

func (c *EmployeeController) stateResponse() browserStateResponse {
	s := c.browser.State()
	resp := browserStateResponse{
		Employees:     mappers.EmployeesToViewModels(s.Employees),
		Query:         s.Query,
		Page:          s.Page,
		TotalPages:    s.TotalPages,
		Total:         s.Total,
		Loading:       s.Loading,
		PendingDelete: s.PendingDelete,
	}
	if s.Sorting != nil {
		resp.Sort = &sortStateResponse{
			Field:     string(s.Sorting.Field),
			Ascending: s.Sorting.Ascending,
		}
	}
	return resp
}

func (c *EmployeeController) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.stateResponse())
}

func (c *EmployeeController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := c.browser.Refresh(r.Context()); err != nil {
		logError(r, err, "refreshing employee list")
		writeAPIError(w, r, http.StatusBadGateway, "EMPLOYEES_FETCH_FAILED", "failed to load employees")
		return
	}
	writeJSON(w, http.StatusOK, c.stateResponse())
}

type searchForm struct {
	Term string `form:"term"`
}

func (c *EmployeeController) Search(w http.ResponseWriter, r *http.Request) {
	body, err := decodeForm(r, &searchForm{})
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EMPLOYEES_BAD_REQUEST", "invalid request body")
		return
	}
	c.browser.Search(body.Term)
	writeJSON(w, http.StatusOK, c.stateResponse())
}

type sortForm struct {
	Field string `form:"field"`
}

func (c *EmployeeController) Sort(w http.ResponseWriter, r *http.Request) {
	body, err := decodeForm(r, &sortForm{})
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EMPLOYEES_BAD_REQUEST", "invalid request body")
		return
	}
	if err := c.browser.SortBy(browser.Field(strings.TrimSpace(body.Field))); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EMPLOYEES_BAD_SORT_FIELD", "unknown sort field")
		return
	}
	writeJSON(w, http.StatusOK, c.stateResponse())
}

type pageForm struct {
	Page int `form:"page"`
}

func (c *EmployeeController) Page(w http.ResponseWriter, r *http.Request) {
	body, err := decodeForm(r, &pageForm{})
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EMPLOYEES_BAD_REQUEST", "invalid request body")
		return
	}
	c.browser.Page(body.Page)
	writeJSON(w, http.StatusOK, c.stateResponse())
}

func (c *EmployeeController) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EMPLOYEES_BAD_ID", "invalid employee id")
		return
	}
	c.browser.RequestDelete(id)
	writeJSON(w, http.StatusOK, c.stateResponse())
}

func (c *EmployeeController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	if err := c.browser.ConfirmDelete(r.Context()); err != nil {
		logError(r, err, "deleting employee")
		status := http.StatusBadGateway
		if errors.Is(err, employee.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeAPIError(w, r, status, "EMPLOYEES_DELETE_FAILED", "failed to delete employee")
		return
	}
	writeJSON(w, http.StatusOK, c.stateResponse())
}

func (c *EmployeeController) CancelDelete(w http.ResponseWriter, r *http.Request) {
	c.browser.CancelDelete()
	writeJSON(w, http.StatusOK, c.stateResponse())
}
