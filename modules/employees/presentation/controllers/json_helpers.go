package controllers

import (
	"net/http"

	"github.com/go-faster/errors"

	"github.com/hrmkit/employee-console/pkg/composables"
	"github.com/hrmkit/employee-console/pkg/configuration"
	"github.com/hrmkit/employee-console/pkg/httpapi"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if err := httpapi.WriteJSON(w, status, payload); err != nil {
		panic(err)
	}
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	requestID := httpapi.EnsureRequestID(w, r, configuration.Use().RequestIDHeader)
	_ = httpapi.WriteError(w, status, code, message, map[string]string{
		"request_id": requestID,
	})
}

func decodeForm[T comparable](r *http.Request, dst T) (T, error) {
	out, err := composables.UseForm(dst, r)
	if err != nil {
		return out, errors.Wrap(err, "decode form body")
	}
	return out, nil
}

func logError(r *http.Request, err error, msg string) {
	logger := composables.UseLogger(r.Context())
	if ip, ok := composables.UseIP(r.Context()); ok {
		logger = logger.WithField("ip", ip)
	}
	logger.WithError(err).Error(msg)
}
