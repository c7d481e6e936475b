package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"projectforge/internal/delivery/api/middleware"
	"projectforge/internal/delivery/api/validator"
	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/testutil"
	"projectforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customerDao records the calls of the entity handler.
type customerDao struct {
	filter  query.Filter
	updated *entity.Customer
	deleted int64
	status  candh.Status
	err     error
}

func (d *customerDao) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	if d.err != nil {
		return nil, d.err
	}

	return &entity.Customer{Base: entity.Base{ID: id}, Name: "ACME"}, nil
}

func (d *customerDao) GetList(_ context.Context, filter query.Filter, _ ...query.Predicate[entity.Customer]) ([]*entity.Customer, error) {
	d.filter = filter

	return []*entity.Customer{{Base: entity.Base{ID: 1}, Name: "ACME"}}, nil
}

func (d *customerDao) Save(_ context.Context, obj *entity.Customer) (int64, error) {
	obj.ID = 5

	return 5, d.err
}

func (d *customerDao) Update(_ context.Context, obj *entity.Customer) (candh.Status, error) {
	d.updated = obj

	return d.status, d.err
}

func (d *customerDao) MarkAsDeleted(_ context.Context, id int64) error {
	d.deleted = id

	return d.err
}

func (d *customerDao) Undelete(context.Context, int64) error    { return d.err }
func (d *customerDao) ForceDelete(context.Context, int64) error { return d.err }

func (d *customerDao) GetHistory(context.Context, int64) ([]entity.DisplayHistoryEntry, error) {
	return []entity.DisplayHistoryEntry{{PropertyName: "name", OldValue: "A", NewValue: "ACME"}}, d.err
}

func (d *customerDao) ExportHistory(context.Context, int64) ([]byte, error) {
	return []byte("xlsx"), d.err
}

func (d *customerDao) AddListener(usecase.Listener[entity.Customer]) {}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(testutil.DiscardLogger()).HandleHTTPError

	return e
}

func serveCustomers(t *testing.T, dao *customerDao, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	NewEntityHandler[entity.Customer](dao, entity.EntityCustomer).Register(e.Group("/customers"))

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestEntityHandler_List_ParsesFilter(t *testing.T) {
	dao := &customerDao{}

	rec := serveCustomers(t, dao, http.MethodGet,
		"/customers?search=acme&deleted=include&maxRows=10&sort=name,-lastUpdate&modifiedBy=42&modifiedFrom=2024-01-01", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", dao.filter.SearchString)
	assert.Equal(t, query.DeletedInclude, dao.filter.Deleted)
	assert.Equal(t, 10, dao.filter.MaxRows)
	assert.Equal(t, []query.SortProperty{{Property: "name"}, {Property: "lastUpdate", Descending: true}}, dao.filter.SortProperties)
	require.NotNil(t, dao.filter.ModifiedByUserID)
	assert.Equal(t, int64(42), *dao.filter.ModifiedByUserID)
	require.NotNil(t, dao.filter.ModifiedFrom)
	assert.Equal(t, 2024, dao.filter.ModifiedFrom.Year())
	assert.True(t, dao.filter.HasHistoryParams())
}

func TestEntityHandler_List_InvalidParam(t *testing.T) {
	rec := serveCustomers(t, &customerDao{}, http.MethodGet, "/customers?maxRows=many", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				I18nKey string `json:"i18n_key"`
				Field   string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "validation.error.invalidValue", body.Error.Details.I18nKey)
	assert.Equal(t, "maxRows", body.Error.Details.Field)
}

func TestEntityHandler_Update_UsesPathID(t *testing.T) {
	dao := &customerDao{status: candh.StatusMajor}

	rec := serveCustomers(t, dao, http.MethodPut, "/customers/7", `{"ID": 99, "Name": "ACME GmbH"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dao.updated)
	assert.Equal(t, int64(7), dao.updated.ID)
	assert.Equal(t, "ACME GmbH", dao.updated.Name)
	assert.Contains(t, rec.Body.String(), `"status":"MAJOR"`)
}

func TestEntityHandler_Delete(t *testing.T) {
	dao := &customerDao{}

	rec := serveCustomers(t, dao, http.MethodDelete, "/customers/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(3), dao.deleted)
}

func TestEntityHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: domainerrors.ErrEntityNotFound.WithDetails("Customer 3"), code: http.StatusNotFound},
		{name: "already deleted", err: domainerrors.ErrEntityDeleted, code: http.StatusConflict},
		{name: "access", err: domainerrors.NewAccessError(domainerrors.OpDelete, entity.EntityCustomer), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveCustomers(t, &customerDao{err: tt.err}, http.MethodDelete, "/customers/3", "")

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestEntityHandler_ExportHistory(t *testing.T) {
	rec := serveCustomers(t, &customerDao{}, http.MethodGet, "/customers/3/history/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Customer-3-history.xlsx")
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestEntityHandler_InvalidID(t *testing.T) {
	rec := serveCustomers(t, &customerDao{}, http.MethodGet, "/customers/abc/history", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
