package api

import (
	"strconv"
	"strings"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建交易请求
// category 传类别名称（在当前用户的类别集合内解析）
type CreateTransactionRequest struct {
	UserEmail   string  `json:"user_email" binding:"required,email" example:"test@example.com"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"499.00"`
	Type        string  `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Category    string  `json:"category" binding:"required" example:"Food"`
	PaymentMode string  `json:"payment_mode" example:"Card"`
	Date        string  `json:"date" binding:"required" example:"2024-01-15"`
	Note        string  `json:"note" example:"Lunch"`
	IsRecurring bool    `json:"is_recurring" example:"false"`
}

// TransactionView 交易记录视图（附带类别信息）
type TransactionView struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	CategoryID   uint      `json:"category_id"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	CategoryName string    `json:"category_name"`
	PaymentMode  string    `json:"payment_mode"`
	Date         time.Time `json:"date"`
	Note         string    `json:"note"`
	IsRecurring  bool      `json:"is_recurring"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon"`
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建一条收入/支出记录；金额必须为正数，交易类型必须与类别类型一致。is_recurring=true 的记录同时充当周期账单模板。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "金额非法、类别不存在或类型不匹配"
// @Failure 404 {object} Response "用户不存在"
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.UserEmail)
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	// 解析类别（限定在当前用户的类别内）
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		BadRequest(c, "类别不能为空")
		return
	}
	var cat models.Category
	if err := database.DB.Where("user_id = ? AND name = ?", user.ID, req.Category).First(&cat).Error; err != nil {
		BadRequest(c, "类别不存在")
		return
	}

	// 交易类型必须与类别类型一致
	if req.Type != cat.Type {
		BadRequest(c, "交易类型与类别类型不一致")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	paymentMode := strings.TrimSpace(req.PaymentMode)
	if paymentMode == "" {
		paymentMode = "Card"
	}

	tx := models.Transaction{
		UserID:      user.ID,
		CategoryID:  cat.ID,
		Amount:      req.Amount,
		Type:        req.Type,
		PaymentMode: paymentMode,
		Date:        date,
		Note:        req.Note,
		IsRecurring: req.IsRecurring,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", tx)
}

// ListAll 获取用户全部交易记录
// @Summary 获取交易记录列表
// @Description 获取用户全部交易记录（附带类别名称/颜色/图标），按日期倒序。支持筛选：关键词（匹配备注或类别名）、日期范围、类别、金额范围；各筛选条件为 AND 关系，缺省即不限制。
// @Tags 交易记录
// @Produce json
// @Param email path string true "用户邮箱"
// @Param search query string false "关键词（匹配备注或类别名）"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Param category_id query int false "类别ID"
// @Param min_amount query number false "最小金额"
// @Param max_amount query number false "最大金额"
// @Success 200 {array} TransactionView "获取成功"
// @Failure 400 {object} Response "筛选参数格式错误"
// @Failure 404 {object} Response "用户不存在"
// @Router /transactions/all/{email} [get]
func (h *TransactionHandler) ListAll(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	query := database.DB.Table("transactions").
		Select("transactions.id, transactions.user_id, transactions.category_id, transactions.amount, "+
			"transactions.type, transactions.payment_mode, transactions.date, transactions.note, "+
			"transactions.is_recurring, categories.name AS category, categories.name AS category_name, "+
			"categories.color, categories.icon").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", user.ID)

	// 关键词：匹配备注或类别名
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("transactions.note LIKE ? OR categories.name LIKE ?", like, like)
	}

	// 日期范围（非法值直接拒绝，不能静默放宽筛选）
	if startStr := c.Query("start_date"); startStr != "" {
		t, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
			return
		}
		query = query.Where("transactions.date >= ?", t)
	}
	if endStr := c.Query("end_date"); endStr != "" {
		t, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			BadRequest(c, "结束日期格式错误，应为: 2006-01-02")
			return
		}
		// 包含结束日期当天
		t = t.Add(24*time.Hour - time.Second)
		query = query.Where("transactions.date <= ?", t)
	}

	// 类别
	if catStr := c.Query("category_id"); catStr != "" {
		catID, err := strconv.ParseUint(catStr, 10, 32)
		if err != nil {
			BadRequest(c, "无效的类别ID")
			return
		}
		query = query.Where("transactions.category_id = ?", uint(catID))
	}

	// 金额范围
	if minStr := c.Query("min_amount"); minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			BadRequest(c, "最小金额格式错误")
			return
		}
		query = query.Where("transactions.amount >= ?", v)
	}
	if maxStr := c.Query("max_amount"); maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			BadRequest(c, "最大金额格式错误")
			return
		}
		query = query.Where("transactions.amount <= ?", v)
	}

	var list []TransactionView
	if err := query.Order("transactions.date DESC, transactions.id DESC").Scan(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if list == nil {
		list = []TransactionView{}
	}

	c.JSON(200, list)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定交易记录（物理删除）；记录不存在返回 404
// @Tags 交易记录
// @Produce json
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tx models.Transaction
	if err := database.DB.First(&tx, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
