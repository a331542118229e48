package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRequest struct {
	ItemID  int    `param:"itemId" json:"-" validate:"required,min=1"`
	OwnerID int    `query:"ownerId" json:"-" validate:"required,min=1"`
	Name    string `json:"name" validate:"notblank,max=5"`
}

func (r *linkRequest) Validate() error { return Struct(r) }

type mismatchRequest struct{}

func (r *mismatchRequest) Validate() error {
	return CustomValidationErrors{{Field: "id", Message: "must match itemId in the path"}}
}

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	c.SetParamNames("itemId")
	c.SetParamValues("3")
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidate_BindsQueryOnPost(t *testing.T) {
	c := newContext(http.MethodPost, "/items/3?ownerId=7", `{"name":"Ash"}`)

	var req linkRequest
	require.NoError(t, BindAndValidate(c, &req))
	assert.Equal(t, linkRequest{ItemID: 3, OwnerID: 7, Name: "Ash"}, req)
}

func TestBindAndValidate_FieldErrorsUseWireNames(t *testing.T) {
	c := newContext(http.MethodPost, "/items/3", `{"name":"  "}`)

	err := BindAndValidate(c, &linkRequest{})
	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	fields := map[string]string{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}
	assert.Equal(t, map[string]string{
		"ownerId": "is required",
		"name":    "is required",
	}, fields)
}

func TestBindAndValidate_MaxLength(t *testing.T) {
	c := newContext(http.MethodPost, "/items/3?ownerId=1", `{"name":"Bulbasaur"}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &linkRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "must not exceed 5 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/items/3?ownerId=1", `{"name":`)

	httpErr := asHTTPError(t, BindAndValidate(c, &linkRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request body", httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_BindErrorsHideParserText(t *testing.T) {
	badPath := newContext(http.MethodGet, "/items/abc?ownerId=1", "")
	badPath.SetParamValues("abc")

	tests := []struct {
		name    string
		c       echo.Context
		message string
	}{
		{"path", badPath, "Invalid path parameters"},
		{"query", newContext(http.MethodGet, "/items/3?ownerId=x", ""), "Invalid query parameters"},
		{"body type", newContext(http.MethodPost, "/items/3?ownerId=1", `{"name":7}`), "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, BindAndValidate(tt.c, &linkRequest{}))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.NotContains(t, httpErr.Message, "strconv")
		})
	}
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPut, "/items/3", `{}`)

	httpErr := asHTTPError(t, BindAndValidate(c, &mismatchRequest{}))
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "must match itemId in the path"}}, httpErr.Errors)
}
