// Package health aggregates readiness checks of a service's dependencies.
package health

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

type Check struct {
	Name  string
	Check func(context.Context, bool) (int, string, error)
}

type checkResult struct {
	Resource string `json:"resource"`
	Status   int    `json:"status"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
}

type report struct {
	Status       int           `json:"status"`
	Dependencies []checkResult `json:"dependencies"`
}

// CheckAll runs every check and reports 503 if any of them failed. The body is a JSON report of
// all results.
func CheckAll(ctx context.Context, checkLiveness bool, checks []Check) (int, string, error) {
	r := report{
		Status:       http.StatusOK,
		Dependencies: make([]checkResult, 0, len(checks)),
	}

	for _, check := range checks {
		status, message, err := check.Check(ctx, checkLiveness)
		if err != nil || status != http.StatusOK {
			r.Status = http.StatusServiceUnavailable
		}

		result := checkResult{
			Resource: check.Name,
			Status:   status,
			Message:  message,
		}

		if err != nil {
			result.Error = err.Error()
		}

		r.Dependencies = append(r.Dependencies, result)
	}

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(r)
	if err != nil {
		return http.StatusInternalServerError, "", err
	}

	return r.Status, string(body), nil
}
