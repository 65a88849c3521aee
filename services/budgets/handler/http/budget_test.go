package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
	"github.com/piresc/xpend/internal/pkg/requestcontext"
	"github.com/piresc/xpend/services/budgets/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestcontext.EchoUserIDKey, "u1")
	return c, rec
}

func TestListBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBudgetUC(ctrl)
	uc.EXPECT().ListBudgets(gomock.Any(), "u1").Return([]models.BudgetView{
		{ID: "b1", Category: "Food", Allocated: 1000, Spent: 500},
	}, nil)

	c, rec := newContext(http.MethodGet, "/budgets", "")
	require.NoError(t, NewBudgetHandler(uc).ListBudgets(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"b1","category":"Food","allocated":1000,"spent":500}]`, rec.Body.String())
}

func TestCreateBudget(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "Success", body: `{"category":"Food","allocated":1000}`, wantStatus: http.StatusOK},
		{
			name:       "Duplicate",
			body:       `{"category":"Food","allocated":1000}`,
			err:        apperrors.New(apperrors.ErrDuplicate, "Budget for this category already exists"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Budget for this category already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockBudgetUC(ctrl)
			var view *models.BudgetView
			if tc.err == nil {
				view = &models.BudgetView{ID: "b1", Category: "Food", Allocated: 1000}
			}
			uc.EXPECT().CreateBudget(gomock.Any(), "u1", &models.CreateBudgetRequest{Category: "Food", Allocated: 1000}).Return(view, tc.err)

			c, rec := newContext(http.MethodPost, "/budgets", tc.body)
			require.NoError(t, NewBudgetHandler(uc).CreateBudget(c))
			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantMsg != "" {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.wantMsg, body["message"])
			}
		})
	}
}

func TestCreateBudget_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBudgetUC(ctrl)

	c, rec := newContext(http.MethodPost, "/budgets", `{"allocated":"lots"}`)
	require.NoError(t, NewBudgetHandler(uc).CreateBudget(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockBudgetUC(ctrl)
	allocated := 750.0
	uc.EXPECT().UpdateBudget(gomock.Any(), "u1", "b1", &models.UpdateBudgetRequest{Allocated: &allocated}).
		Return(&models.BudgetView{ID: "b1", Category: "Food", Allocated: 750}, nil)
	uc.EXPECT().DeleteBudget(gomock.Any(), "u1", "b2").
		Return(apperrors.New(apperrors.ErrNotAuthorized, "Not authorized"))
	h := NewBudgetHandler(uc)

	c, rec := newContext(http.MethodPut, "/budgets/b1", `{"allocated":750}`)
	c.SetParamNames("id")
	c.SetParamValues("b1")
	require.NoError(t, h.UpdateBudget(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodDelete, "/budgets/b2", "")
	c.SetParamNames("id")
	c.SetParamValues("b2")
	require.NoError(t, h.DeleteBudget(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
