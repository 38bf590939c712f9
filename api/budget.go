package api

import (
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// BudgetHandler 预算处理器
type BudgetHandler struct{}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// SetBudgetRequest 设置预算请求
type SetBudgetRequest struct {
	UserEmail    string  `json:"user_email" binding:"required,email" example:"test@example.com"`
	CategoryName string  `json:"category_name" binding:"required" example:"Food"`
	Limit        float64 `json:"limit" binding:"required,gt=0" example:"5000"`
}

// Set 设置类别预算
// @Summary 设置预算
// @Description 为某个类别设置当月预算限额；同一类别再次设置会覆盖原限额（不按月份留存历史版本）
// @Tags 预算
// @Accept json
// @Produce json
// @Param request body SetBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "设置成功"
// @Failure 400 {object} Response "请求参数错误或类别不存在"
// @Failure 404 {object} Response "用户不存在"
// @Router /budgets [post]
func (h *BudgetHandler) Set(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.UserEmail)
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	var cat models.Category
	if err := database.DB.Where("user_id = ? AND name = ?", user.ID, req.CategoryName).First(&cat).Error; err != nil {
		BadRequest(c, "类别不存在")
		return
	}

	// 每个类别一条当前限额，存在则覆盖
	var budget models.Budget
	if err := database.DB.Where("user_id = ? AND category_id = ?", user.ID, cat.ID).First(&budget).Error; err == nil {
		if err := database.DB.Model(&budget).Update("limit_amount", req.Limit).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新预算失败"))
			return
		}
		budget.LimitAmount = req.Limit
		SuccessWithMessage(c, "预算已更新", budget)
		return
	}

	budget = models.Budget{
		UserID:      user.ID,
		CategoryID:  cat.ID,
		LimitAmount: req.Limit,
	}
	if err := database.DB.Create(&budget).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "设置预算失败"))
		return
	}

	SuccessWithMessage(c, "预算已设置", budget)
}

// budgetRow 预算+类别联查结果
type budgetRow struct {
	CategoryID  uint
	Name        string
	Color       string
	Icon        string
	LimitAmount float64
}

// categorySpent 某类别在窗口内的支出合计
type categorySpent struct {
	CategoryID uint
	Total      float64
}

// Status 获取当月预算消耗
// @Summary 获取预算消耗
// @Description 计算用户每个已设预算类别在指定月份的支出、消耗百分比和超支标记。spent 始终从账本实时推导，不存冗余值；限额为 0 时百分比为 0。历史月份沿用当前限额。
// @Tags 预算
// @Produce json
// @Param email path string true "用户邮箱"
// @Param month query string false "月份 (2024-01)，缺省为当月"
// @Success 200 {array} models.BudgetUsage "获取成功"
// @Failure 400 {object} Response "月份格式错误"
// @Failure 404 {object} Response "用户不存在"
// @Router /budgets/{email} [get]
func (h *BudgetHandler) Status(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	// 解析月份，缺省为当月
	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
	if monthStr := c.Query("month"); monthStr != "" {
		t, err := time.ParseInLocation("2006-01", monthStr, time.Local)
		if err != nil {
			BadRequest(c, "月份格式错误，应为: 2024-01")
			return
		}
		monthStart = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	// 已设预算的类别（按类别创建顺序，不按严重程度排序）
	var rows []budgetRow
	if err := database.DB.Table("budgets").
		Select("budgets.category_id, categories.name, categories.color, categories.icon, budgets.limit_amount").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ?", user.ID).
		Order("budgets.category_id ASC").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 各类别当月支出（一次分组查询）
	var spents []categorySpent
	if err := database.DB.Table("transactions").
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?",
			user.ID, models.TypeExpense, monthStart, monthEnd).
		Group("category_id").
		Scan(&spents).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	spentByCategory := make(map[uint]float64, len(spents))
	for _, s := range spents {
		spentByCategory[s.CategoryID] = s.Total
	}

	usages := make([]models.BudgetUsage, 0, len(rows))
	for _, r := range rows {
		spent := spentByCategory[r.CategoryID]
		usages = append(usages, models.BudgetUsage{
			Name:        r.Name,
			BudgetLimit: r.LimitAmount,
			Spent:       spent,
			Percentage:  models.UsagePercentage(spent, r.LimitAmount),
			IsOver:      spent > r.LimitAmount,
			Color:       r.Color,
			Icon:        r.Icon,
		})
	}

	c.JSON(200, usages)
}

// BudgetHistoryRow 预算历史条目（月度）
type BudgetHistoryRow struct {
	Month       string  `json:"month"`
	BudgetLimit float64 `json:"budget_limit"`
	TotalSpent  float64 `json:"total_spent"`
}

// History 获取预算消耗历史
// @Summary 获取预算消耗历史
// @Description 返回最近 6 个月预算类别的总限额与总支出对比。历史月份沿用当前限额（已知简化，不做按月版本化），无支出的月份补 0。
// @Tags 预算
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} BudgetHistoryRow "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /budgets/history/{email} [get]
func (h *BudgetHandler) History(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	// 当前限额总和（历史月份同样使用该值）
	var totalLimit float64
	if err := database.DB.Table("budgets").
		Select("COALESCE(SUM(limit_amount), 0)").
		Where("user_id = ?", user.ID).
		Scan(&totalLimit).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 已设预算类别在各月的支出
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -5, 0)

	type monthSpent struct {
		Month string
		Total float64
	}
	var spents []monthSpent
	if err := database.DB.Table("transactions").
		Select("DATE_FORMAT(date, '%Y-%m') AS month, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND category_id IN (?)",
			user.ID, models.TypeExpense, windowStart,
			database.DB.Table("budgets").Select("category_id").Where("user_id = ?", user.ID)).
		Group("DATE_FORMAT(date, '%Y-%m')").
		Scan(&spents).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	spentByMonth := make(map[string]float64, len(spents))
	for _, s := range spents {
		spentByMonth[s.Month] = s.Total
	}

	// 按月补齐窗口内的空月份
	history := make([]BudgetHistoryRow, 0, 6)
	for i := 0; i < 6; i++ {
		m := windowStart.AddDate(0, i, 0)
		key := m.Format("2006-01")
		history = append(history, BudgetHistoryRow{
			Month:       m.Format("Jan"),
			BudgetLimit: totalLimit,
			TotalSpent:  spentByMonth[key],
		})
	}

	c.JSON(200, history)
}
