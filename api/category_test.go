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

func TestCategoryHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	// 重名检查：无记录
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"user_email":"test@example.com","name":"Pets","type":"expense","color":"#f97316","icon":"🐱"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	// 同名类别已存在
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type"}).
			AddRow(3, 1, "Food", "expense"))

	router := gin.New()
	router.POST("/categories", NewCategoryHandler().Create)

	body := `{"user_email":"test@example.com","name":"Food","type":"expense"}`
	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "类别名称已存在", resp.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_DefaultProtected(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "is_default"}).
			AddRow(3, 1, "Food", "expense", true))

	router := gin.New()
	router.DELETE("/categories/:id", NewCategoryHandler().Delete)

	req := httptest.NewRequest("DELETE", "/categories/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "默认类别不可删除", resp.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete_Cascade(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "is_default"}).
			AddRow(11, 1, "Pets", "expense", false))

	// 类别、交易、预算在同一事务内删除
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `transactions`").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM `budgets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/categories/:id", NewCategoryHandler().Delete)

	req := httptest.NewRequest("DELETE", "/categories/11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "color", "icon", "is_default"}).
			AddRow(1, 1, "Salary", "income", "#22c55e", "💼", true).
			AddRow(3, 1, "Food", "expense", "#ef4444", "🍔", true))

	router := gin.New()
	router.GET("/categories/:email", NewCategoryHandler().List)

	req := httptest.NewRequest("GET", "/categories/test@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Salary", list[0]["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}
