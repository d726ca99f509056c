package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ametelin/fintrack/internal/service"
	"github.com/ametelin/fintrack/internal/store"
	"github.com/ametelin/fintrack/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doAuthed performs a request carrying the default valid bearer token.
func doAuthed(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer good-token")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestResourceList(t *testing.T) {
	accounts := &mockResourceService[models.Account, models.AccountInput]{
		listFn: func(_ context.Context, callerID int64) ([]models.Account, error) {
			assert.Equal(t, testUserID, callerID)
			return []models.Account{
				{AccountID: 1, UserID: callerID, Name: "Checking", Type: "bank", Balance: decimal.RequireFromString("150.25")},
			}, nil
		},
	}
	router := newTestRouter(t, &service.Services{Accounts: accounts})

	w := doAuthed(router, http.MethodGet, "/api/accounts", "")

	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Checking", listed[0].Name)
}

func TestResourceList_ServerError(t *testing.T) {
	accounts := &mockResourceService[models.Account, models.AccountInput]{
		listFn: func(_ context.Context, _ int64) ([]models.Account, error) {
			return nil, store.ErrExecutingQuery
		},
	}
	router := newTestRouter(t, &service.Services{Accounts: accounts})

	w := doAuthed(router, http.MethodGet, "/api/accounts", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String(),
		"persistence details must not leak to clients")
}

func TestResourceCreate(t *testing.T) {
	accounts := &mockResourceService[models.Account, models.AccountInput]{
		createFn: func(_ context.Context, callerID int64, in models.AccountInput) (models.Account, error) {
			require.NotNil(t, in.Name)
			assert.Equal(t, "Checking", *in.Name)
			return models.Account{AccountID: 11, UserID: callerID, Name: *in.Name, Type: *in.Type}, nil
		},
	}
	router := newTestRouter(t, &service.Services{Accounts: accounts})

	w := doAuthed(router, http.MethodPost, "/api/accounts", `{"name":"Checking","type":"bank"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(11), created.AccountID)
	assert.Equal(t, testUserID, created.UserID)
}

func TestResourceCreate_MissingFields(t *testing.T) {
	incomes := &mockResourceService[models.Income, models.IncomeInput]{
		createFn: func(_ context.Context, _ int64, _ models.IncomeInput) (models.Income, error) {
			return models.Income{}, service.ErrMissingRequiredFields
		},
	}
	router := newTestRouter(t, &service.Services{Incomes: incomes})

	w := doAuthed(router, http.MethodPost, "/api/incomes", `{"source":"salary"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
}

func TestResourceCreate_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		Accounts: &mockResourceService[models.Account, models.AccountInput]{},
	})

	w := doAuthed(router, http.MethodPost, "/api/accounts", `{broken`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid JSON was passed"}`, w.Body.String())
}

func TestResourceGet(t *testing.T) {
	expenses := &mockResourceService[models.Expense, models.ExpenseInput]{
		getFn: func(_ context.Context, callerID, id int64) (models.Expense, error) {
			assert.Equal(t, testUserID, callerID)
			assert.Equal(t, int64(5), id)
			return models.Expense{ExpenseID: id, UserID: callerID, Category: "groceries"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{Expenses: expenses})

	w := doAuthed(router, http.MethodGet, "/api/expenses/5", "")

	require.Equal(t, http.StatusOK, w.Code)

	var expense models.Expense
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &expense))
	assert.Equal(t, "groceries", expense.Category)
}

func TestResourceGet_Foreign(t *testing.T) {
	expenses := &mockResourceService[models.Expense, models.ExpenseInput]{
		getFn: func(_ context.Context, _, _ int64) (models.Expense, error) {
			return models.Expense{}, service.ErrNotResourceOwner
		},
	}
	router := newTestRouter(t, &service.Services{Expenses: expenses})

	w := doAuthed(router, http.MethodGet, "/api/expenses/5", "")

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized"}`, w.Body.String())
}

func TestResourceGet_NotFound(t *testing.T) {
	expenses := &mockResourceService[models.Expense, models.ExpenseInput]{
		getFn: func(_ context.Context, _, _ int64) (models.Expense, error) {
			return models.Expense{}, store.ErrResourceNotFound
		},
	}
	router := newTestRouter(t, &service.Services{Expenses: expenses})

	w := doAuthed(router, http.MethodGet, "/api/expenses/999", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestResourceGet_NonNumericID(t *testing.T) {
	expenses := &mockResourceService[models.Expense, models.ExpenseInput]{
		getFn: func(_ context.Context, _, _ int64) (models.Expense, error) {
			t.Fatal("service must not be called for an unparsable id")
			return models.Expense{}, nil
		},
	}
	router := newTestRouter(t, &service.Services{Expenses: expenses})

	w := doAuthed(router, http.MethodGet, "/api/expenses/abc", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Expense not found"}`, w.Body.String())
}

func TestResourceUpdate(t *testing.T) {
	savings := &mockResourceService[models.Saving, models.SavingInput]{
		updateFn: func(_ context.Context, callerID, id int64, in models.SavingInput) (models.Saving, error) {
			assert.Equal(t, testUserID, callerID)
			assert.Equal(t, int64(3), id)
			require.NotNil(t, in.Amount)
			assert.Nil(t, in.TargetAmount, "omitted field must decode as nil")
			return models.Saving{SavingID: id, UserID: callerID, Amount: *in.Amount}, nil
		},
	}
	router := newTestRouter(t, &service.Services{Savings: savings})

	w := doAuthed(router, http.MethodPut, "/api/savings/3", `{"amount":"500"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestResourceDelete(t *testing.T) {
	savings := &mockResourceService[models.Saving, models.SavingInput]{
		deleteFn: func(_ context.Context, callerID, id int64) error {
			assert.Equal(t, testUserID, callerID)
			assert.Equal(t, int64(3), id)
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{Savings: savings})

	w := doAuthed(router, http.MethodDelete, "/api/savings/3", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Saving removed"}`, w.Body.String())
}

func TestResourceDelete_Foreign(t *testing.T) {
	accounts := &mockResourceService[models.Account, models.AccountInput]{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return service.ErrNotResourceOwner
		},
	}
	router := newTestRouter(t, &service.Services{Accounts: accounts})

	w := doAuthed(router, http.MethodDelete, "/api/accounts/1", "")

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Not authorized"}`, w.Body.String())
}
