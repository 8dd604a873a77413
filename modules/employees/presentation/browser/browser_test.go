package browser_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/modules/employees/presentation/browser"
	"github.com/hrmkit/employee-console/pkg/eventbus"
	"github.com/hrmkit/employee-console/pkg/notify"
)

type fakeService struct {
	employees     []employee.Employee
	listErr       error
	deleteErr     error
	failNextList  bool
	deletedIDs    []uint
	listCalls     int
}

func (f *fakeService) GetAll(_ context.Context) ([]employee.Employee, error) {
	f.listCalls++
	if f.failNextList {
		f.failNextList = false
		return nil, errors.New("backend down")
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeService) Delete(_ context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	for i, e := range f.employees {
		if e.ID() == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			break
		}
	}
	return nil
}

func emp(id uint, first, last string, dob string, email string) employee.Employee {
	parsed, _ := time.Parse(employee.DateLayout, dob)
	return employee.Hydrate(id, first, last, parsed, "5551234567", email,
		"12 Main Street", "", employee.GenderOther)
}

func fixture() []employee.Employee {
	return []employee.Employee{
		emp(1, "Charlie", "Young", "1990-01-01", "charlie@example.com"),
		emp(2, "Alice", "Brown", "1985-06-15", "alice@example.com"),
		emp(3, "Oliver", "Smith", "2000-12-31", "oliver@example.com"),
		emp(4, "Bob", "Li", "1995-03-20", "bob@example.com"),
	}
}

func newBrowser(t *testing.T, svc *fakeService, pageSize int) (*browser.Browser, *notify.Bus) {
	t.Helper()
	bus := notify.NewBus(eventbus.NewEventPublisher(logrus.New()), 3*time.Second, clockwork.NewFakeClock())
	return browser.New(svc, bus, pageSize), bus
}

func TestBrowser_Refresh(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)

	require.NoError(t, b.Refresh(context.Background()))
	state := b.State()
	require.Len(t, state.Employees, 4)
	require.Equal(t, 1, state.Page)
	require.False(t, state.Loading)
}

func TestBrowser_Refresh_FailureKeepsStaleList(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, bus := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	svc.listErr = errors.New("backend down")
	require.Error(t, b.Refresh(context.Background()))

	state := b.State()
	require.Len(t, state.Employees, 4, "stale snapshot stays visible")
	toast := bus.Current()
	require.True(t, toast.Visible)
	require.Equal(t, notify.KindError, toast.Kind)
}

func TestBrowser_Refresh_DropsSearchReappliesSort(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	require.NoError(t, b.SortBy(browser.FieldName))
	b.Search("li")
	require.NoError(t, b.Refresh(context.Background()))

	state := b.State()
	require.Empty(t, state.Query, "refresh drops the search term")
	require.Len(t, state.Employees, 4)
	require.NotNil(t, state.Sorting)
	require.Equal(t, browser.FieldName, state.Sorting.Field)
	require.Equal(t, "Alice Brown", state.Employees[0].FullName(), "sort survives refresh")
}

func TestBrowser_Search(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	// "li" matches Alice Brown, Oliver Smith, Charlie Young and Bob Li.
	b.Search("li")
	require.Len(t, b.VisibleSlice(), 4)

	b.Search("  alice  ")
	visible := b.VisibleSlice()
	require.Len(t, visible, 1)
	require.Equal(t, "Alice Brown", visible[0].FullName())

	b.Search("ALICE")
	require.Len(t, b.VisibleSlice(), 1, "search is case-insensitive")

	b.Search("")
	require.Len(t, b.VisibleSlice(), 4, "empty term restores the whole snapshot")
}

func TestBrowser_Search_Idempotent(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	b.Search("li")
	first := b.VisibleSlice()
	b.Search("li")
	require.Equal(t, first, b.VisibleSlice())
}

func TestBrowser_SortBy_ToggleLaw(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	require.NoError(t, b.SortBy(browser.FieldName))
	asc := b.VisibleSlice()
	require.Equal(t, "Alice Brown", asc[0].FullName())
	require.Equal(t, "Oliver Smith", asc[3].FullName())

	require.NoError(t, b.SortBy(browser.FieldName))
	desc := b.VisibleSlice()
	require.Equal(t, "Oliver Smith", desc[0].FullName())

	// Switching fields resets to ascending.
	require.NoError(t, b.SortBy(browser.FieldID))
	byID := b.VisibleSlice()
	require.Equal(t, uint(1), byID[0].ID())

	require.NoError(t, b.SortBy(browser.FieldName))
	require.Equal(t, "Alice Brown", b.VisibleSlice()[0].FullName(),
		"coming back to a field starts ascending again")
}

func TestBrowser_SortBy_Fields(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	require.NoError(t, b.SortBy(browser.FieldDOB))
	require.Equal(t, uint(2), b.VisibleSlice()[0].ID(), "oldest birth date first")

	require.NoError(t, b.SortBy(browser.FieldAge))
	require.Equal(t, uint(3), b.VisibleSlice()[0].ID(), "youngest first")

	require.NoError(t, b.SortBy(browser.FieldEmail))
	require.Equal(t, "alice@example.com", b.VisibleSlice()[0].Email())
}

func TestBrowser_SortBy_UnknownField(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	err := b.SortBy(browser.Field("salary"))
	require.ErrorIs(t, err, employee.ErrUnknownSortField)
}

func TestBrowser_Pagination(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 3)
	require.NoError(t, b.Refresh(context.Background()))

	state := b.State()
	require.Equal(t, 2, state.TotalPages)
	require.Len(t, state.Employees, 3)

	b.Page(2)
	require.Len(t, b.VisibleSlice(), 1)

	// The two pages partition the collection.
	b.Page(1)
	page1 := b.VisibleSlice()
	b.Page(2)
	page2 := b.VisibleSlice()
	seen := map[uint]bool{}
	for _, e := range append(page1, page2...) {
		require.False(t, seen[e.ID()], "no row appears twice")
		seen[e.ID()] = true
	}
	require.Len(t, seen, 4)

	// Out-of-range moves are ignored.
	b.Page(3)
	require.Equal(t, 2, b.State().Page)
	b.Page(0)
	require.Equal(t, 2, b.State().Page)
}

func TestBrowser_DeleteFlow(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, bus := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	b.RequestDelete(2)
	require.Equal(t, uint(2), b.State().PendingDelete)

	require.NoError(t, b.ConfirmDelete(context.Background()))
	state := b.State()
	require.Zero(t, state.PendingDelete, "prompt closes")
	require.Len(t, state.Employees, 3, "delete triggers a refresh")
	require.Equal(t, []uint{2}, svc.deletedIDs)
	require.Equal(t, notify.KindSuccess, bus.Current().Kind)
}

func TestBrowser_DeleteSucceedsEvenWhenRefreshFails(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, bus := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	b.RequestDelete(2)
	svc.failNextList = true
	require.NoError(t, b.ConfirmDelete(context.Background()),
		"a failed reload does not turn the delete into an error")

	require.Equal(t, []uint{2}, svc.deletedIDs)
	state := b.State()
	require.Zero(t, state.PendingDelete)
	require.Len(t, state.Employees, 4, "stale snapshot stays visible")
	require.Equal(t, notify.KindError, bus.Current().Kind,
		"the reload failure surfaces through its own toast")
}

func TestBrowser_DeleteFailureClosesPromptWithoutRefresh(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, bus := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))
	calls := svc.listCalls

	svc.deleteErr = errors.New("backend down")
	b.RequestDelete(2)
	require.Error(t, b.ConfirmDelete(context.Background()))

	state := b.State()
	require.Zero(t, state.PendingDelete)
	require.Len(t, state.Employees, 4, "list untouched")
	require.Equal(t, calls, svc.listCalls, "no refresh on failure")
	require.Equal(t, notify.KindError, bus.Current().Kind)
}

func TestBrowser_CancelDelete(t *testing.T) {
	svc := &fakeService{employees: fixture()}
	b, _ := newBrowser(t, svc, 10)
	require.NoError(t, b.Refresh(context.Background()))

	b.RequestDelete(2)
	b.CancelDelete()
	require.Zero(t, b.State().PendingDelete)

	// Confirm after cancel is a no-op.
	require.NoError(t, b.ConfirmDelete(context.Background()))
	require.Empty(t, svc.deletedIDs)
}
