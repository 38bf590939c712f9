package api

import (
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// GoalHandler 储蓄目标处理器
type GoalHandler struct{}

// NewGoalHandler 创建储蓄目标处理器
func NewGoalHandler() *GoalHandler {
	return &GoalHandler{}
}

// CreateGoalRequest 创建目标请求
type CreateGoalRequest struct {
	UserEmail    string  `json:"user_email" binding:"required,email" example:"test@example.com"`
	Name         string  `json:"name" binding:"required,min=1,max=100" example:"New Laptop"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0" example:"80000"`
	Deadline     string  `json:"deadline" binding:"omitempty" example:"2025-12-31"`
}

// AddMoneyRequest 目标存取款请求
// amount_added 为有符号增量：正数存入，负数取出
type AddMoneyRequest struct {
	GoalID      uint    `json:"goal_id" binding:"required" example:"1"`
	AmountAdded float64 `json:"amount_added" binding:"required" example:"1500"`
}

// GoalView 目标视图（附带达成建议）
type GoalView struct {
	models.Goal
	Suggestion models.GoalSuggestion `json:"suggestion"`
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Description 创建储蓄目标，初始余额为 0，截止日期可选
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param request body CreateGoalRequest true "目标信息"
// @Success 200 {object} Response{data=models.Goal} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "用户不存在"
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.UserEmail)
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	goal := models.Goal{
		UserID:       user.ID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != "" {
		deadline, err := time.ParseInLocation("2006-01-02", req.Deadline, time.Local)
		if err != nil {
			BadRequest(c, "截止日期格式错误，应为: 2006-01-02")
			return
		}
		goal.Deadline = &deadline
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建目标失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", goal)
}

// List 获取储蓄目标列表
// @Summary 获取储蓄目标列表
// @Description 获取用户全部储蓄目标，附带达成建议：已达成 reached；过期未达成 overdue；否则给出每月需储蓄金额
// @Tags 储蓄目标
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} GoalView "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /goals/{email} [get]
func (h *GoalHandler) List(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	var goals []models.Goal
	if err := database.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	now := time.Now()
	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, GoalView{Goal: g, Suggestion: g.Suggest(now)})
	}

	c.JSON(200, views)
}

// AddMoney 目标存取款
// @Summary 目标存取款
// @Description 按有符号增量更新目标余额（正数存入，负数取出）。余额更新在存储层原子完成，余额不足的取出会失败且不改动余额。
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param request body AddMoneyRequest true "存取款信息"
// @Success 200 {object} Response{data=models.Goal} "操作成功"
// @Failure 400 {object} Response "增量为 0 或余额不足"
// @Failure 404 {object} Response "目标不存在"
// @Router /goals/add-money [put]
func (h *GoalHandler) AddMoney(c *gin.Context) {
	var req AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if req.AmountAdded == 0 {
		BadRequest(c, "金额不能为 0")
		return
	}

	var goal models.Goal
	if err := database.DB.First(&goal, req.GoalID).Error; err != nil {
		NotFound(c, "目标不存在")
		return
	}

	// 单条带条件的原子更新：并发存取在存储层串行化，余额不足时不命中任何行
	result := database.DB.Exec(
		"UPDATE goals SET current_amount = current_amount + ?, updated_at = ? WHERE id = ? AND current_amount + ? >= 0",
		req.AmountAdded, time.Now(), req.GoalID, req.AmountAdded,
	)
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "更新失败"))
		return
	}
	if result.RowsAffected == 0 {
		BadRequest(c, "余额不足，取出金额不能超过当前余额")
		return
	}

	if err := database.DB.First(&goal, req.GoalID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	SuccessWithMessage(c, "操作成功", goal)
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Description 删除指定储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "目标不存在"
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var goal models.Goal
	if err := database.DB.First(&goal, uint(id)).Error; err != nil {
		NotFound(c, "目标不存在")
		return
	}

	if err := database.DB.Delete(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
