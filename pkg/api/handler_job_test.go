package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateJobHandlerValidation(t *testing.T) {
	s := &Server{}

	t.Run("unknown type is rejected", func(t *testing.T) {
		c, _ := postJSON(t, "/jobs", `{"type":"mine_bitcoin"}`)

		err := s.createJobHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		he := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Error(), "mine_bitcoin")
	})

	t.Run("empty type is rejected", func(t *testing.T) {
		c, _ := postJSON(t, "/jobs", `{}`)

		err := s.createJobHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		c, _ := postJSON(t, "/jobs", `{"type":`)

		err := s.createJobHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})
}

func TestGetJobHandlerValidation(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := s.getJobHandler(c)
	require.IsType(t, &echo.HTTPError{}, err)
	assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
}
