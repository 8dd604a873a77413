// Package browser holds the list-view state: a wholesale snapshot of the
// directory plus search, sort, pagination and the two-step delete gate.
package browser

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/pkg/notify"
)

// Field enumerates the sortable columns. Anything outside this set is
// rejected rather than falling back to string comparison.
type Field string

const (
	FieldID     Field = "id"
	FieldName   Field = "name"
	FieldDOB    Field = "dob"
	FieldAge    Field = "age"
	FieldEmail  Field = "email"
	FieldMobile Field = "mobile"
	FieldGender Field = "gender"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldID, FieldName, FieldDOB, FieldAge, FieldEmail, FieldMobile, FieldGender:
		return true
	}
	return false
}

type SortState struct {
	Field     Field
	Ascending bool
}

type directoryService interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
	Delete(ctx context.Context, id uint) error
}

type Browser struct {
	mu       sync.Mutex
	svc      directoryService
	toasts   *notify.Bus
	pageSize int

	master   []employee.Employee
	filtered []employee.Employee
	query    string
	sorting  *SortState
	page     int
	loading  bool

	// pendingDelete is the staged candidate; zero means the confirmation
	// prompt is closed.
	pendingDelete uint
}

func New(svc directoryService, toasts *notify.Bus, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Browser{
		svc:      svc,
		toasts:   toasts,
		pageSize: pageSize,
		page:     1,
	}
}

// Refresh replaces the snapshot wholesale. The active search term is
// dropped, the active sort is re-applied, and the view returns to page 1.
// On failure the stale snapshot stays visible under a failure toast.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	employees, err := b.svc.GetAll(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		b.toasts.Show("Failed to load employees", notify.KindError)
		return err
	}
	b.master = employees
	b.query = ""
	if b.sorting != nil {
		sortEmployees(b.master, *b.sorting)
	}
	b.filtered = append([]employee.Employee(nil), b.master...)
	b.page = 1
	return nil
}

// Search narrows the view to records whose full name contains the trimmed
// term, case-insensitively. The relative order of the snapshot is kept.
func (b *Browser) Search(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.query = strings.TrimSpace(term)
	needle := strings.ToLower(b.query)
	if needle == "" {
		b.filtered = append([]employee.Employee(nil), b.master...)
	} else {
		b.filtered = b.filtered[:0:0]
		for _, e := range b.master {
			if strings.Contains(strings.ToLower(e.FullName()), needle) {
				b.filtered = append(b.filtered, e)
			}
		}
	}
	b.page = 1
}

// SortBy orders the view by the given field. Sorting the already-active
// field flips the direction; a new field starts ascending.
func (b *Browser) SortBy(field Field) error {
	if !field.IsValid() {
		return employee.ErrUnknownSortField
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sorting != nil && b.sorting.Field == field {
		b.sorting.Ascending = !b.sorting.Ascending
	} else {
		b.sorting = &SortState{Field: field, Ascending: true}
	}
	sortEmployees(b.master, *b.sorting)
	sortEmployees(b.filtered, *b.sorting)
	b.page = 1
	return nil
}

// Page moves the page pointer; out-of-range values are ignored.
func (b *Browser) Page(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 1 || n > b.totalPages() {
		return
	}
	b.page = n
}

// VisibleSlice returns the rows of the current page.
func (b *Browser) VisibleSlice() []employee.Employee {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := (b.page - 1) * b.pageSize
	if start >= len(b.filtered) {
		return nil
	}
	end := start + b.pageSize
	if end > len(b.filtered) {
		end = len(b.filtered)
	}
	return append([]employee.Employee(nil), b.filtered[start:end]...)
}

func (b *Browser) RequestDelete(id uint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingDelete = id
}

// ConfirmDelete deletes the staged record. The prompt closes either way;
// only a successful delete triggers a refresh. The returned error reports
// the delete itself: a refresh failure after a successful delete surfaces
// through Refresh's own toast and the stale list.
func (b *Browser) ConfirmDelete(ctx context.Context) error {
	b.mu.Lock()
	id := b.pendingDelete
	b.pendingDelete = 0
	b.mu.Unlock()
	if id == 0 {
		return nil
	}

	if err := b.svc.Delete(ctx, id); err != nil {
		b.toasts.Show("Failed to delete employee", notify.KindError)
		return err
	}
	b.toasts.Show("Employee deleted successfully", notify.KindSuccess)
	_ = b.Refresh(ctx)
	return nil
}

func (b *Browser) CancelDelete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingDelete = 0
}

// Snapshot is a read-only view of the browser for rendering.
type Snapshot struct {
	Employees     []employee.Employee
	Query         string
	Sorting       *SortState
	Page          int
	TotalPages    int
	Total         int
	Loading       bool
	PendingDelete uint
}

func (b *Browser) State() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sorting *SortState
	if b.sorting != nil {
		s := *b.sorting
		sorting = &s
	}
	start := (b.page - 1) * b.pageSize
	var visible []employee.Employee
	if start < len(b.filtered) {
		end := start + b.pageSize
		if end > len(b.filtered) {
			end = len(b.filtered)
		}
		visible = append([]employee.Employee(nil), b.filtered[start:end]...)
	}
	return Snapshot{
		Employees:     visible,
		Query:         b.query,
		Sorting:       sorting,
		Page:          b.page,
		TotalPages:    b.totalPages(),
		Total:         len(b.filtered),
		Loading:       b.loading,
		PendingDelete: b.pendingDelete,
	}
}

func (b *Browser) totalPages() int {
	if len(b.filtered) == 0 {
		return 1
	}
	return (len(b.filtered) + b.pageSize - 1) / b.pageSize
}

func sortEmployees(list []employee.Employee, s SortState) {
	less := lessFunc(s.Field)
	sort.SliceStable(list, func(i, j int) bool {
		if s.Ascending {
			return less(list[i], list[j])
		}
		return less(list[j], list[i])
	})
}

func lessFunc(field Field) func(a, b employee.Employee) bool {
	switch field {
	case FieldID:
		return func(a, b employee.Employee) bool { return a.ID() < b.ID() }
	case FieldAge:
		return func(a, b employee.Employee) bool { return a.Age() < b.Age() }
	case FieldDOB:
		return func(a, b employee.Employee) bool { return a.DateOfBirth().Before(b.DateOfBirth()) }
	case FieldName:
		return func(a, b employee.Employee) bool {
			return strings.ToLower(a.FullName()) < strings.ToLower(b.FullName())
		}
	case FieldEmail:
		return func(a, b employee.Employee) bool {
			return strings.ToLower(a.Email()) < strings.ToLower(b.Email())
		}
	case FieldMobile:
		return func(a, b employee.Employee) bool { return a.Mobile() < b.Mobile() }
	default: // FieldGender
		return func(a, b employee.Employee) bool {
			return strings.ToLower(string(a.Gender())) < strings.ToLower(string(b.Gender()))
		}
	}
}
