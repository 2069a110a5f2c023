package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
)

func bindStatus(t *testing.T, body string) (dto.UpdateOrderStatusRequest, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req dto.UpdateOrderStatusRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestOrderStatusValidation(t *testing.T) {
	SetupValidator()
	SetupValidator()

	for _, body := range []string{
		`{"order_status":"shipped"}`,
		`{"orderStatus":"Delivered"}`,
		`{"status":" ACCEPTED "}`,
		`{}`,
	} {
		_, err := bindStatus(t, body)
		assert.NoError(t, err, body)
	}

	_, err := bindStatus(t, `{"order_status":"lost"}`)
	require.Error(t, err)
	details := ValidationDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "order_status", details[0].Field)
	assert.Contains(t, details[0].Message, "pending")
}

func TestValidationDetails_NotValidation(t *testing.T) {
	_, err := bindStatus(t, `{"order_status":`)
	require.Error(t, err)
	assert.Nil(t, ValidationDetails(err))
}
