package shared

import (
	"net/http"
	"strconv"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var Decoder = form.NewDecoder()

// ParseID extracts the {id} route variable as an unsigned integer.
func ParseID(r *http.Request) (uint, error) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		return 0, errors.New("id route variable missing")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", raw)
	}
	return uint(id), nil
}
