package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageHandlerValidation(t *testing.T) {
	s := &Server{}

	t.Run("invalid conversation id returns 400", func(t *testing.T) {
		c, _ := postJSON(t, "/conversations/abc/messages", `{"content":"hi"}`)

		err := s.createMessageHandler(c)
		require.IsType(t, &echo.HTTPError{}, err)
		he := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Error(), "conversation id")
	})

	t.Run("empty content returns 400", func(t *testing.T) {
		e := echo.New()
		e.POST("/conversations/:id/messages", s.createMessageHandler)

		req := httptest.NewRequest(http.MethodPost, "/conversations/1/messages", nil)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteConversationHandlerValidation(t *testing.T) {
	s := &Server{}

	e := echo.New()
	e.DELETE("/conversations/:id", s.deleteConversationHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/conversations/zero", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
