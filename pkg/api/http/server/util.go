package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

var (
	errmap map[int][]error = map[int][]error{
		http.StatusNotFound: []error{
			ie.ErrNotFound,
		},
		http.StatusBadRequest: []error{
			ie.ErrDuplicateTask,
			ie.ErrNoTaskType,
			ie.ErrMaxExceeded,
			ie.ErrInvalidState,
			ie.ErrInvalidArg,
		},
	}
)

// mapError returns the http status code for a given error from gantry, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for code, errs := range errmap {
		for _, e := range errs {
			if errors.Is(err, e) {
				return code
			}
		}
	}
	return http.StatusInternalServerError
}

func unmarshalQuery(w http.ResponseWriter, r *http.Request, out *structs.Query) error {
	q := r.URL.Query()

	if q.Has("limit") {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad limit: %v", err)
		}
		out.Limit = limit
	}

	if q.Has("offset") {
		offset, err := strconv.Atoi(q.Get("offset"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return fmt.Errorf("bad offset: %v", err)
		}
		out.Offset = offset
	}

	if q.Has("project_id") {
		out.ProjectID = q.Get("project_id")
	}
	if q.Has("task_ids") {
		out.TaskIDs = q["task_ids"]
	}
	if q.Has("types") {
		out.Types = q["types"]
	}
	if q.Has("statuses") {
		out.Statuses = []structs.Status{}
		for _, s := range q["statuses"] {
			st := structs.ToStatus(s)
			if st == "" {
				http.Error(w, "bad status", http.StatusBadRequest)
				return fmt.Errorf("bad status: %v", s)
			}
			out.Statuses = append(out.Statuses, st)
		}
	}

	out.Sanitize()
	return nil
}
