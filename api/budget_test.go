package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"fintrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetHandler_Set_CreateNew(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type"}).
			AddRow(3, 1, "Food", "expense"))

	// 尚无该类别的预算
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budgets`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/budgets", NewBudgetHandler().Set)

	body := `{"user_email":"test@example.com","category_name":"Food","limit":5000}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "预算已设置", resp.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Set_Overwrite(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type"}).
			AddRow(3, 1, "Food", "expense"))

	// 已有预算，覆盖限额
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category_id", "limit_amount"}).
			AddRow(8, 1, 3, 3000.0))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `budgets` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/budgets", NewBudgetHandler().Set)

	body := `{"user_email":"test@example.com","category_name":"Food","limit":5000}`
	req := httptest.NewRequest("POST", "/budgets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "预算已更新", resp.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Status(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	// 两个已设预算的类别，其中一个限额为 0
	mock.ExpectQuery("SELECT .* FROM .budgets.").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "name", "color", "icon", "limit_amount"}).
			AddRow(3, "Food", "#ef4444", "🍔", 1000.0).
			AddRow(4, "Transport", "#3b82f6", "🚗", 0.0))

	// 当月支出分组合计：Food 超支，Transport 有支出但限额为 0
	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "total"}).
			AddRow(3, 1500.0).
			AddRow(4, 200.0))

	router := gin.New()
	router.GET("/budgets/:email", NewBudgetHandler().Status)

	req := httptest.NewRequest("GET", "/budgets/test@example.com?month=2024-06", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var usages []models.BudgetUsage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &usages))
	require.Len(t, usages, 2)

	assert.Equal(t, "Food", usages[0].Name)
	assert.Equal(t, 150.0, usages[0].Percentage)
	assert.True(t, usages[0].IsOver)

	// 限额为 0 的类别百分比归 0，不报除零错误
	assert.Equal(t, "Transport", usages[1].Name)
	assert.Equal(t, 0.0, usages[1].Percentage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Status_InvalidMonth(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	router := gin.New()
	router.GET("/budgets/:email", NewBudgetHandler().Status)

	req := httptest.NewRequest("GET", "/budgets/test@example.com?month=june", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
