package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{InsufficientStock("not enough"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("admins only"), http.StatusForbidden},
		{errors.New("plain"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), "err=%v", tc.err)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", InsufficientStock("have 1, need 2"))
	assert.True(t, Is(err, KindInsufficientStock))
	assert.Equal(t, http.StatusBadRequest, Status(err))
}

func TestFromHidesInternalDetails(t *testing.T) {
	api := From(errors.New("pq: connection refused"))
	assert.Equal(t, KindInternal, api.Kind)
	assert.NotContains(t, api.Detail, "pq:")

	api = From(NotFound("product not found"))
	assert.Equal(t, KindNotFound, api.Kind)
	assert.Equal(t, "product not found", api.Detail)
}
