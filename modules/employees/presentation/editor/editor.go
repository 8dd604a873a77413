// Package editor holds the form state for creating and editing a single
// employee record: field values, validation errors, touched flags, derived
// age and the debounced uniqueness checks.
package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
	"github.com/hrmkit/employee-console/pkg/constants"
	"github.com/hrmkit/employee-console/pkg/notify"
)

// ErrFormInvalid is returned by Submit when field rules or a taken
// uniqueness flag block the save. No network call is made in that case.
var ErrFormInvalid = errors.New("form has validation errors")

const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldDateOfBirth = "dateOfBirth"
	FieldMobile      = "mobile"
	FieldEmail       = "email"
	FieldAddress1    = "address1"
	FieldAddress2    = "address2"
	FieldGender      = "gender"
)

var allFields = []string{
	FieldFirstName, FieldLastName, FieldDateOfBirth, FieldMobile,
	FieldEmail, FieldAddress1, FieldAddress2, FieldGender,
}

type directoryService interface {
	GetByID(ctx context.Context, id uint) (employee.Employee, error)
	Create(ctx context.Context, data employee.CreateDTO) (employee.Employee, error)
	Update(ctx context.Context, id uint, data employee.UpdateDTO) (employee.Employee, error)
	CheckEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	CheckMobile(ctx context.Context, mobile string, excludeID uint) (bool, error)
}

type Editor struct {
	mu       sync.Mutex
	svc      directoryService
	toasts   *notify.Bus
	clock    clockwork.Clock
	debounce time.Duration

	id       uint // zero in create mode
	values   employee.CreateDTO
	baseline employee.CreateDTO
	age      int
	errs     map[string]string
	touched  map[string]bool

	emailTaken  bool
	mobileTaken bool

	// Per-field sequence counters. A check response is applied only when
	// its sequence still matches, so a superseded check can never clobber
	// the flag of a newer one.
	emailSeq    uint64
	mobileSeq   uint64
	emailTimer  clockwork.Timer
	mobileTimer clockwork.Timer

	done bool
}

func New(svc directoryService, toasts *notify.Bus, clock clockwork.Clock, debounce time.Duration) *Editor {
	return &Editor{
		svc:      svc,
		toasts:   toasts,
		clock:    clock,
		debounce: debounce,
		errs:     map[string]string{},
		touched:  map[string]bool{},
	}
}

// StartCreate resets the form into create mode.
func (e *Editor) StartCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = 0
	e.resetLocked()
}

// Load fetches the record and enters edit mode, capturing a baseline for
// dirty tracking. A missing record is a hard error surfaced as a toast.
func (e *Editor) Load(ctx context.Context, id uint) error {
	entity, err := e.svc.GetByID(ctx, id)
	if err != nil {
		e.toasts.Show("Failed to load employee", notify.KindError)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = id
	e.resetLocked()
	e.values = employee.CreateDTO{
		FirstName:   entity.FirstName(),
		LastName:    entity.LastName(),
		DateOfBirth: entity.DateOfBirth().Format(employee.DateLayout),
		Mobile:      entity.Mobile(),
		Email:       entity.Email(),
		Address1:    entity.Address1(),
		Address2:    entity.Address2(),
		Gender:      string(entity.Gender()),
	}
	e.baseline = e.values
	e.age = entity.Age()
	return nil
}

// SetField applies a single keystroke-level change. Date of birth triggers a
// synchronous age recompute; email and mobile schedule a debounced
// uniqueness check when their local format rules pass.
func (e *Editor) SetField(ctx context.Context, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case FieldFirstName:
		e.values.FirstName = value
	case FieldLastName:
		e.values.LastName = value
	case FieldDateOfBirth:
		e.values.DateOfBirth = value
		e.recomputeAgeLocked()
	case FieldMobile:
		e.values.Mobile = value
		e.scheduleMobileCheckLocked(ctx)
	case FieldEmail:
		e.values.Email = value
		e.scheduleEmailCheckLocked(ctx)
	case FieldAddress1:
		e.values.Address1 = value
	case FieldAddress2:
		e.values.Address2 = value
	case FieldGender:
		e.values.Gender = value
	default:
		return errors.New("unknown form field: " + field)
	}
	e.touched[field] = true
	e.revalidateLocked()
	return nil
}

func (e *Editor) recomputeAgeLocked() {
	dob, err := time.Parse(employee.DateLayout, e.values.DateOfBirth)
	if err != nil {
		e.age = 0
		return
	}
	e.age = employee.AgeAt(dob, time.Now())
}

func (e *Editor) revalidateLocked() {
	errs, _ := e.values.Ok(context.Background())
	e.errs = errs
}

func (e *Editor) scheduleEmailCheckLocked(ctx context.Context) {
	e.emailSeq++
	if e.emailTimer != nil {
		e.emailTimer.Stop()
	}
	if constants.Validate.Var(e.values.Email, "required,email,max=254,strictemail") != nil {
		e.emailTaken = false
		return
	}
	seq := e.emailSeq
	value := e.values.Email
	excludeID := e.id
	// The check fires after the request that scheduled it has finished;
	// its cancellation must not travel along.
	checkCtx := context.WithoutCancel(ctx)
	e.emailTimer = e.clock.AfterFunc(e.debounce, func() {
		taken, err := e.svc.CheckEmail(checkCtx, value, excludeID)
		if err != nil {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		if seq == e.emailSeq {
			e.emailTaken = taken
		}
	})
}

func (e *Editor) scheduleMobileCheckLocked(ctx context.Context) {
	e.mobileSeq++
	if e.mobileTimer != nil {
		e.mobileTimer.Stop()
	}
	if constants.Validate.Var(e.values.Mobile, "required,mobile10") != nil {
		e.mobileTaken = false
		return
	}
	seq := e.mobileSeq
	value := e.values.Mobile
	excludeID := e.id
	checkCtx := context.WithoutCancel(ctx)
	e.mobileTimer = e.clock.AfterFunc(e.debounce, func() {
		taken, err := e.svc.CheckMobile(checkCtx, value, excludeID)
		if err != nil {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		if seq == e.mobileSeq {
			e.mobileTaken = taken
		}
	})
}

// HasUnsavedChanges is always true in create mode; in edit mode it compares
// the current values against the snapshot captured by Load.
func (e *Editor) HasUnsavedChanges() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.id == 0 {
		return true
	}
	return e.values != e.baseline
}

// Submit saves the form. Validation failures or a taken email/mobile mark
// every field touched and block the request entirely.
func (e *Editor) Submit(ctx context.Context) error {
	e.mu.Lock()
	e.values.Normalize()
	errs, ok := e.values.Ok(ctx)
	e.errs = errs
	if !ok || e.emailTaken || e.mobileTaken {
		for _, f := range allFields {
			e.touched[f] = true
		}
		e.mu.Unlock()
		return ErrFormInvalid
	}
	id := e.id
	data := e.values
	e.mu.Unlock()

	var err error
	if id == 0 {
		_, err = e.svc.Create(ctx, data)
	} else {
		_, err = e.svc.Update(ctx, id, data)
	}
	if err != nil {
		e.toasts.Show("Failed to save employee", notify.KindError)
		return err
	}

	e.mu.Lock()
	e.done = true
	e.mu.Unlock()
	if id == 0 {
		e.toasts.Show("Employee created successfully", notify.KindSuccess)
	} else {
		e.toasts.Show("Employee updated successfully", notify.KindSuccess)
	}
	return nil
}

// Discard abandons in-progress edits without submitting.
func (e *Editor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done = true
}

// Reset clears every field to empty and untouched without navigating.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

func (e *Editor) resetLocked() {
	e.values = employee.CreateDTO{}
	e.baseline = employee.CreateDTO{}
	e.age = 0
	e.errs = map[string]string{}
	e.touched = map[string]bool{}
	e.emailTaken = false
	e.mobileTaken = false
	e.done = false
	// Invalidate in-flight checks.
	e.emailSeq++
	e.mobileSeq++
	if e.emailTimer != nil {
		e.emailTimer.Stop()
		e.emailTimer = nil
	}
	if e.mobileTimer != nil {
		e.mobileTimer.Stop()
		e.mobileTimer = nil
	}
}

// Snapshot is a read-only view of the form for rendering.
type Snapshot struct {
	ID          uint              `json:"id"`
	Creating    bool              `json:"creating"`
	Values      employee.CreateDTO `json:"values"`
	Age         int               `json:"age"`
	Errors      map[string]string `json:"errors"`
	Touched     map[string]bool   `json:"touched"`
	EmailTaken  bool              `json:"emailTaken"`
	MobileTaken bool              `json:"mobileTaken"`
	Dirty       bool              `json:"dirty"`
	Done        bool              `json:"done"`
}

func (e *Editor) State() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	errs := make(map[string]string, len(e.errs))
	for k, v := range e.errs {
		errs[k] = v
	}
	touched := make(map[string]bool, len(e.touched))
	for k, v := range e.touched {
		touched[k] = v
	}
	dirty := e.id == 0 || e.values != e.baseline
	return Snapshot{
		ID:          e.id,
		Creating:    e.id == 0,
		Values:      e.values,
		Age:         e.age,
		Errors:      errs,
		Touched:     touched,
		EmailTaken:  e.emailTaken,
		MobileTaken: e.mobileTaken,
		Dirty:       dirty,
		Done:        e.done,
	}
}
