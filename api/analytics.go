package api

import (
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 统计分析处理器
// 全部为读侧投影：每次请求从账本实时聚合，不持久化任何汇总值
type AnalyticsHandler struct{}

// NewAnalyticsHandler 创建统计分析处理器
func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// PieSlice 饼图切片（按类别汇总的支出）
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthlyBar 月度柱状条目
type MonthlyBar struct {
	Name    string  `json:"name"` // 月份缩写，如 Jan
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Savings float64 `json:"savings"` // income − expense，由同一行派生
}

// AnalyticsResponse 统计分析响应
type AnalyticsResponse struct {
	Pie []PieSlice   `json:"pie"`
	Bar []MonthlyBar `json:"bar"`
}

// Overview 获取统计概览（饼图+月度柱状图）
// @Summary 获取统计概览
// @Description 饼图为全部历史的支出按类别汇总；柱状图为最近 6 个月按月的收支对比（按时间顺序），savings 由同一行的 income−expense 派生
// @Tags 统计分析
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {object} AnalyticsResponse "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /analytics/{email} [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	// 支出按类别汇总（全部历史）
	var pie []PieSlice
	if err := database.DB.Table("transactions").
		Select("categories.name AS name, COALESCE(SUM(transactions.amount), 0) AS value").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", user.ID, models.TypeExpense).
		Group("categories.name").
		Order("value DESC").
		Scan(&pie).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if pie == nil {
		pie = []PieSlice{}
	}

	// 最近 6 个月按 (月, 类型) 汇总
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -5, 0)

	type monthTypeTotal struct {
		Month string
		Type  string
		Total float64
	}
	var rows []monthTypeTotal
	if err := database.DB.Table("transactions").
		Select("DATE_FORMAT(date, '%Y-%m') AS month, type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ?", user.ID, windowStart).
		Group("DATE_FORMAT(date, '%Y-%m'), type").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	incomeByMonth := make(map[string]float64)
	expenseByMonth := make(map[string]float64)
	for _, r := range rows {
		if r.Type == models.TypeIncome {
			incomeByMonth[r.Month] = r.Total
		} else {
			expenseByMonth[r.Month] = r.Total
		}
	}

	// 按时间顺序补齐窗口内的月份
	bar := make([]MonthlyBar, 0, 6)
	for i := 0; i < 6; i++ {
		m := windowStart.AddDate(0, i, 0)
		key := m.Format("2006-01")
		income := incomeByMonth[key]
		expense := expenseByMonth[key]
		bar = append(bar, MonthlyBar{
			Name:    m.Format("Jan"),
			Income:  income,
			Expense: expense,
			Savings: income - expense,
		})
	}

	c.JSON(200, AnalyticsResponse{Pie: pie, Bar: bar})
}

// DailyIncomeRow 日度收入条目
type DailyIncomeRow struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DailyIncome 获取日度收入序列
// @Summary 获取日度收入
// @Description 最近 30 天按日汇总的收入，按日期倒序；没有收入的日期不出现在结果中（省略策略）
// @Tags 统计分析
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} DailyIncomeRow "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /income/daily/{email} [get]
func (h *AnalyticsHandler) DailyIncome(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	// 截断到当天零点，窗口边界不随请求时刻漂移
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, -30)

	var rows []DailyIncomeRow
	if err := database.DB.Table("transactions").
		Select("DATE_FORMAT(date, '%Y-%m-%d') AS date, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ?", user.ID, models.TypeIncome, windowStart).
		Group("DATE_FORMAT(date, '%Y-%m-%d')").
		Order("date DESC").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if rows == nil {
		rows = []DailyIncomeRow{}
	}

	c.JSON(200, rows)
}

// MonthlyIncomeRow 月度收入条目
type MonthlyIncomeRow struct {
	Month       string  `json:"month"`        // 2024-01
	DisplayName string  `json:"display_name"` // Jan 2024
	Total       float64 `json:"total"`
}

// MonthlyIncome 获取月度收入序列
// @Summary 获取月度收入
// @Description 最近 12 个月按月汇总的收入，按月份倒序（调用方自行反转为时间序）；没有收入的月份不出现在结果中（省略策略）
// @Tags 统计分析
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} MonthlyIncomeRow "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /income/monthly/{email} [get]
func (h *AnalyticsHandler) MonthlyIncome(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -11, 0)

	type monthTotal struct {
		Month string
		Total float64
	}
	var rows []monthTotal
	if err := database.DB.Table("transactions").
		Select("DATE_FORMAT(date, '%Y-%m') AS month, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ?", user.ID, models.TypeIncome, windowStart).
		Group("DATE_FORMAT(date, '%Y-%m')").
		Order("month DESC").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	result := make([]MonthlyIncomeRow, 0, len(rows))
	for _, r := range rows {
		display := r.Month
		if t, err := time.ParseInLocation("2006-01", r.Month, time.Local); err == nil {
			display = t.Format("Jan 2006")
		}
		result = append(result, MonthlyIncomeRow{
			Month:       r.Month,
			DisplayName: display,
			Total:       r.Total,
		})
	}

	c.JSON(200, result)
}

// CategoryMonthlyRow 类别×月份条目
type CategoryMonthlyRow struct {
	Month        string  `json:"month"`
	CategoryName string  `json:"category_name"`
	Total        float64 `json:"total"`
}

// CategoryMonthly 获取类别×月份矩阵
// @Summary 获取类别月度矩阵
// @Description 最近 6 个月按 (月份, 类别) 汇总的支出，用于堆叠图；类别集合为查询窗口内实际出现的类别，不是全量注册表
// @Tags 统计分析
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} CategoryMonthlyRow "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /analytics/category-monthly/{email} [get]
func (h *AnalyticsHandler) CategoryMonthly(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -5, 0)

	var rows []CategoryMonthlyRow
	if err := database.DB.Table("transactions").
		Select("DATE_FORMAT(transactions.date, '%Y-%m') AS month, categories.name AS category_name, "+
			"COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ? AND transactions.date >= ?",
			user.ID, models.TypeExpense, windowStart).
		Group("DATE_FORMAT(transactions.date, '%Y-%m'), categories.name").
		Order("month ASC, category_name ASC").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if rows == nil {
		rows = []CategoryMonthlyRow{}
	}

	c.JSON(200, rows)
}
