package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/modules/employees/presentation/editor"
	"github.com/hrmkit/employee-console/pkg/application"
	"github.com/hrmkit/employee-console/pkg/shared"
)

// EditorController drives the record form over HTTP: one endpoint per form
// gesture, each returning the resulting form state.
type EditorController struct {
	app      application.Application
	editor   *editor.Editor
	basePath string
}

func NewEditorController(app application.Application, e *editor.Editor) application.Controller {
	return &EditorController{
		app:      app,
		editor:   e,
		basePath: "/employees/editor",
	}
}

func (c *EditorController) Key() string {
	return c.basePath
}

func (c *EditorController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.State).Methods(http.MethodGet)
	router.HandleFunc("/new", c.StartCreate).Methods(http.MethodPost)
	router.HandleFunc("/fields", c.SetField).Methods(http.MethodPost)
	router.HandleFunc("/submit", c.Submit).Methods(http.MethodPost)
	router.HandleFunc("/reset", c.Reset).Methods(http.MethodPost)
	router.HandleFunc("/discard", c.Discard).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.Load).Methods(http.MethodPost)
}

func (c *EditorController) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.editor.State())
}

func (c *EditorController) StartCreate(w http.ResponseWriter, r *http.Request) {
	c.editor.StartCreate()
	writeJSON(w, http.StatusOK, c.editor.State())
}

func (c *EditorController) Load(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EDITOR_BAD_ID", "invalid employee id")
		return
	}
	if err := c.editor.Load(r.Context(), id); err != nil {
		logError(r, err, "loading employee into editor")
		if errors.Is(err, employee.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "EDITOR_NOT_FOUND", "employee not found")
			return
		}
		writeAPIError(w, r, http.StatusBadGateway, "EDITOR_LOAD_FAILED", "failed to load employee")
		return
	}
	writeJSON(w, http.StatusOK, c.editor.State())
}

type fieldForm struct {
	Field string `form:"field"`
	Value string `form:"value"`
}

func (c *EditorController) SetField(w http.ResponseWriter, r *http.Request) {
	body, err := decodeForm(r, &fieldForm{})
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EDITOR_BAD_REQUEST", "invalid request body")
		return
	}
	if err := c.editor.SetField(r.Context(), body.Field, body.Value); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "EDITOR_BAD_FIELD", "unknown form field")
		return
	}
	writeJSON(w, http.StatusOK, c.editor.State())
}

func (c *EditorController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := c.editor.Submit(r.Context()); err != nil {
		if errors.Is(err, editor.ErrFormInvalid) {
			// The state carries per-field errors and taken flags.
			writeJSON(w, http.StatusUnprocessableEntity, c.editor.State())
			return
		}
		logError(r, err, "saving employee")
		writeAPIError(w, r, http.StatusBadGateway, "EDITOR_SAVE_FAILED", "failed to save employee")
		return
	}
	writeJSON(w, http.StatusOK, c.editor.State())
}

func (c *EditorController) Reset(w http.ResponseWriter, r *http.Request) {
	c.editor.Reset()
	writeJSON(w, http.StatusOK, c.editor.State())
}

func (c *EditorController) Discard(w http.ResponseWriter, r *http.Request) {
	c.editor.Discard()
	writeJSON(w, http.StatusOK, c.editor.State())
}
