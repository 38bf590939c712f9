package api

import (
	"fintrack/database"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct{}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// TypeTotal 按交易类型汇总
type TypeTotal struct {
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// DashboardResponse 仪表盘响应
type DashboardResponse struct {
	Totals []TypeTotal       `json:"totals"`
	Recent []TransactionView `json:"recent"`
}

// Get 获取仪表盘数据
// @Summary 获取仪表盘数据
// @Description 返回用户全部历史的收入/支出总额和最近 5 条交易记录
// @Tags 仪表盘
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {object} DashboardResponse "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /dashboard/{email} [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	// 按类型汇总
	var totals []TypeTotal
	if err := database.DB.Table("transactions").
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", user.ID).
		Group("type").
		Scan(&totals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if totals == nil {
		totals = []TypeTotal{}
	}

	// 最近 5 条交易
	var recent []TransactionView
	if err := database.DB.Table("transactions").
		Select("transactions.id, transactions.user_id, transactions.category_id, transactions.amount, "+
			"transactions.type, transactions.payment_mode, transactions.date, transactions.note, "+
			"transactions.is_recurring, categories.name AS category, categories.name AS category_name, "+
			"categories.color, categories.icon").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", user.ID).
		Order("transactions.date DESC, transactions.id DESC").
		Limit(5).
		Scan(&recent).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if recent == nil {
		recent = []TransactionView{}
	}

	c.JSON(200, DashboardResponse{Totals: totals, Recent: recent})
}
