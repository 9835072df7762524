package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/elevroute/search"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: x", search.ErrInvalidArgument), http.StatusBadRequest},
		{search.ErrBudgetInfeasible, http.StatusUnprocessableEntity},
		{search.ErrNoRoute, http.StatusNotFound},
		{fmt.Errorf("exhaustive: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{fmt.Errorf("exhaustive: %w", context.Canceled), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got, _ := statusOf(tc.err)
		assert.Equal(t, tc.status, got, tc.err.Error())
	}
}
