package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"trackflow/internal/service"
	"trackflow/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func doRespondError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, err)
	return w
}

func TestRespondErrorMapsNotFoundTo404(t *testing.T) {
	w := doRespondError(fmt.Errorf("lead 42: %w", store.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "lead 42")

	// dangling reminder/document references are not-found, not server errors
	w = doRespondError(fmt.Errorf("referenced lead or order: %w", store.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespondErrorMapsValidationTo400(t *testing.T) {
	w := doRespondError(fmt.Errorf("%w: %q", service.ErrInvalidStage, "Closed"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRespondError(fmt.Errorf("%w: %q", service.ErrInvalidEntityType, "customer"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondErrorDefaultsTo500(t *testing.T) {
	w := doRespondError(errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
