package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `loans`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/loans", NewLoanHandler().Create)

	body := `{"user_email":"test@example.com","name":"Car Loan","total_amount":100000,"interest_rate":10,"tenure_months":12,"start_date":"2024-01-01"}`
	req := httptest.NewRequest("POST", "/loans", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// EMI 在创建时按年金公式算出并保留两位小数
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 8791.59, data["emi_amount"].(float64), 0.05)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanHandler_Create_ZeroRate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `loans`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/loans", NewLoanHandler().Create)

	body := `{"user_email":"test@example.com","name":"Family Loan","total_amount":12000,"interest_rate":0,"tenure_months":12,"start_date":"2024-01-01"}`
	req := httptest.NewRequest("POST", "/loans", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// 零利率退化为本金平均分摊
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1000.0, data["emi_amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanHandler_Create_BadStartDate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	router := gin.New()
	router.POST("/loans", NewLoanHandler().Create)

	body := `{"user_email":"test@example.com","name":"Car Loan","total_amount":100000,"interest_rate":10,"tenure_months":12,"start_date":"01/01/2024"}`
	req := httptest.NewRequest("POST", "/loans", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
