// Package directory talks to the employee REST backend. The backend owns the
// authoritative data set; this package only translates between wire JSON and
// the domain aggregate.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hrmkit/employee-console/modules/employees/domain/aggregates/employee"
)

type HTTPDirectory struct {
	client  *http.Client
	baseURL string
}

func NewHTTPDirectory(client *http.Client, baseURL string) *HTTPDirectory {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDirectory{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// employeeModel mirrors the backend wire format. Dates travel as
// "2006-01-02" strings and age is derived on write so the backend can
// persist it without recomputing.
type employeeModel struct {
	ID          uint   `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Age         int    `json:"age,omitempty"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	Gender      string `json:"gender"`
}

func (m employeeModel) toEntity() (employee.Employee, error) {
	dob, err := time.Parse(employee.DateLayout, m.DateOfBirth)
	if err != nil {
		return employee.Employee{}, errors.Wrapf(err, "parse dateOfBirth %q for employee %d", m.DateOfBirth, m.ID)
	}
	return employee.Hydrate(
		m.ID,
		m.FirstName,
		m.LastName,
		dob,
		m.Mobile,
		m.Email,
		m.Address1,
		m.Address2,
		employee.Gender(m.Gender),
	), nil
}

func modelFromDTO(id uint, data employee.CreateDTO) employeeModel {
	m := employeeModel{
		ID:          id,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		DateOfBirth: data.DateOfBirth,
		Mobile:      data.Mobile,
		Email:       data.Email,
		Address1:    data.Address1,
		Address2:    data.Address2,
		Gender:      data.Gender,
	}
	if dob, err := time.Parse(employee.DateLayout, data.DateOfBirth); err == nil {
		m.Age = employee.AgeAt(dob, time.Now())
	}
	return m
}

func (d *HTTPDirectory) List(ctx context.Context) ([]employee.Employee, error) {
	var models []employeeModel
	if err := d.do(ctx, http.MethodGet, d.baseURL, nil, &models); err != nil {
		return nil, err
	}
	out := make([]employee.Employee, 0, len(models))
	for _, m := range models {
		entity, err := m.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (d *HTTPDirectory) GetByID(ctx context.Context, id uint) (employee.Employee, error) {
	var model employeeModel
	if err := d.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", d.baseURL, id), nil, &model); err != nil {
		return employee.Employee{}, err
	}
	return model.toEntity()
}

func (d *HTTPDirectory) Create(ctx context.Context, data employee.CreateDTO) (employee.Employee, error) {
	var model employeeModel
	if err := d.do(ctx, http.MethodPost, d.baseURL, modelFromDTO(0, data), &model); err != nil {
		return employee.Employee{}, err
	}
	return model.toEntity()
}

func (d *HTTPDirectory) Update(ctx context.Context, id uint, data employee.UpdateDTO) (employee.Employee, error) {
	var model employeeModel
	if err := d.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", d.baseURL, id), modelFromDTO(id, data), &model); err != nil {
		return employee.Employee{}, err
	}
	return model.toEntity()
}

func (d *HTTPDirectory) Delete(ctx context.Context, id uint) error {
	return d.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", d.baseURL, id), nil, nil)
}

func (d *HTTPDirectory) CheckEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return d.check(ctx, "check-email", "email", email, excludeID)
}

func (d *HTTPDirectory) CheckMobile(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	return d.check(ctx, "check-mobile", "mobile", mobile, excludeID)
}

func (d *HTTPDirectory) check(ctx context.Context, endpoint, param, value string, excludeID uint) (bool, error) {
	q := url.Values{}
	q.Set(param, value)
	if excludeID > 0 {
		q.Set("id", fmt.Sprint(excludeID))
	}
	var taken bool
	err := d.do(ctx, http.MethodGet, fmt.Sprintf("%s/%s?%s", d.baseURL, endpoint, q.Encode()), nil, &taken)
	if err != nil {
		return false, err
	}
	return taken, nil
}

func (d *HTTPDirectory) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = strings.NewReader(string(payload))
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, rawURL)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, rawURL)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return employee.ErrNotFound
	case resp.StatusCode >= 400:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("%s %s: backend returned %d: %s", method, rawURL, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, rawURL)
	}
	return nil
}
