package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_Overview(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	// 饼图：支出按类别汇总
	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
			AddRow("Food", 300.0).
			AddRow("Transport", 200.0))

	// 柱状图：只有当月有数据，其余月份应补 0
	now := time.Now()
	currentMonth := now.Format("2006-01")
	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"month", "type", "total"}).
			AddRow(currentMonth, "income", 5000.0).
			AddRow(currentMonth, "expense", 3000.0))

	router := gin.New()
	router.GET("/analytics/:email", NewAnalyticsHandler().Overview)

	req := httptest.NewRequest("GET", "/analytics/test@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var resp AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 饼图切片合计 = 窗口内支出合计
	require.Len(t, resp.Pie, 2)
	var pieSum float64
	for _, s := range resp.Pie {
		pieSum += s.Value
	}
	assert.Equal(t, 500.0, pieSum)

	// 6 个月全部补齐，savings 由同一行的 income−expense 派生
	require.Len(t, resp.Bar, 6)
	for _, b := range resp.Bar {
		assert.Equal(t, b.Income-b.Expense, b.Savings)
	}

	// 最后一项是当月，携带数据；前 5 个月为 0
	last := resp.Bar[5]
	assert.Equal(t, now.Format("Jan"), last.Name)
	assert.Equal(t, 5000.0, last.Income)
	assert.Equal(t, 3000.0, last.Expense)
	assert.Equal(t, 2000.0, last.Savings)
	for _, b := range resp.Bar[:5] {
		assert.Equal(t, 0.0, b.Income)
		assert.Equal(t, 0.0, b.Expense)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Overview_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"month", "type", "total"}))

	router := gin.New()
	router.GET("/analytics/:email", NewAnalyticsHandler().Overview)

	req := httptest.NewRequest("GET", "/analytics/test@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var resp AnalyticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 无数据时饼图为空数组（非 null），柱状图仍按窗口补满 6 个月
	assert.NotNil(t, resp.Pie)
	assert.Len(t, resp.Pie, 0)
	require.Len(t, resp.Bar, 6)
	for _, b := range resp.Bar {
		assert.Equal(t, 0.0, b.Income)
		assert.Equal(t, 0.0, b.Expense)
		assert.Equal(t, 0.0, b.Savings)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_DailyIncome(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	// 30 天窗口内只有两天有收入，其余日期不补 0
	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"date", "total"}).
			AddRow("2024-06-15", 2000.0).
			AddRow("2024-06-10", 500.0))

	router := gin.New()
	router.GET("/income/daily/:email", NewAnalyticsHandler().DailyIncome)

	req := httptest.NewRequest("GET", "/income/daily/test@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var rows []DailyIncomeRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	// 按日期倒序，空日期省略
	assert.Equal(t, "2024-06-15", rows[0].Date)
	assert.Equal(t, 2000.0, rows[0].Total)
	assert.Equal(t, "2024-06-10", rows[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_MonthlyIncome(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	// 只有两个月有收入，中间的空月份不出现在结果中
	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"month", "total"}).
			AddRow("2024-06", 8000.0).
			AddRow("2024-03", 7500.0))

	router := gin.New()
	router.GET("/income/monthly/:email", NewAnalyticsHandler().MonthlyIncome)

	req := httptest.NewRequest("GET", "/income/monthly/test@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var rows []MonthlyIncomeRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	// 最新月份在前，display_name 为人类可读格式
	assert.Equal(t, "2024-06", rows[0].Month)
	assert.Equal(t, "Jun 2024", rows[0].DisplayName)
	assert.Equal(t, 8000.0, rows[0].Total)
	assert.Equal(t, "2024-03", rows[1].Month)
	assert.Equal(t, "Mar 2024", rows[1].DisplayName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_CategoryMonthly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectQuery("SELECT .* FROM .transactions.").
		WillReturnRows(sqlmock.NewRows([]string{"month", "category_name", "total"}).
			AddRow("2024-05", "Food", 1200.0).
			AddRow("2024-05", "Transport", 300.0).
			AddRow("2024-06", "Food", 900.0))

	router := gin.New()
	router.GET("/analytics/category-monthly/:email", NewAnalyticsHandler().CategoryMonthly)

	req := httptest.NewRequest("GET", "/analytics/category-monthly/test@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var rows []CategoryMonthlyRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-05", rows[0].Month)
	assert.Equal(t, "Food", rows[0].CategoryName)
	assert.Equal(t, 1200.0, rows[0].Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsHandler_Overview_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.GET("/analytics/:email", NewAnalyticsHandler().Overview)

	req := httptest.NewRequest("GET", "/analytics/nobody@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
