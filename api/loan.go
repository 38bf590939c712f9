package api

import (
	"math"
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// LoanHandler 贷款处理器
type LoanHandler struct{}

// NewLoanHandler 创建贷款处理器
func NewLoanHandler() *LoanHandler {
	return &LoanHandler{}
}

// CreateLoanRequest 创建贷款请求
type CreateLoanRequest struct {
	UserEmail    string  `json:"user_email" binding:"required,email" example:"test@example.com"`
	Name         string  `json:"name" binding:"required,min=1,max=100" example:"Car Loan"`
	TotalAmount  float64 `json:"total_amount" binding:"required,gt=0" example:"100000"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0" example:"10"`
	TenureMonths int     `json:"tenure_months" binding:"required,gt=0" example:"12"`
	StartDate    string  `json:"start_date" binding:"required" example:"2024-01-01"`
}

// LoanView 贷款视图（附带还款进度投影）
type LoanView struct {
	models.Loan
	MonthsPaid      int     `json:"months_paid"`
	AmountPaid      float64 `json:"amount_paid"`
	AmountRemaining float64 `json:"amount_remaining"`
	Progress        float64 `json:"progress"`
}

// Create 创建贷款
// @Summary 创建贷款
// @Description 创建贷款并按标准等额本息公式计算 EMI，计算结果随贷款持久化，之后不再随输入重算
// @Tags 贷款
// @Accept json
// @Produce json
// @Param request body CreateLoanRequest true "贷款信息"
// @Success 200 {object} Response{data=models.Loan} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "用户不存在"
// @Router /loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.UserEmail)
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		BadRequest(c, "起始日期格式错误，应为: 2006-01-02")
		return
	}

	// EMI 在创建时计算一次并持久化
	emi := models.CalculateEMI(req.TotalAmount, req.InterestRate, req.TenureMonths)
	emi = math.Round(emi*100) / 100

	loan := models.Loan{
		UserID:       user.ID,
		Name:         req.Name,
		TotalAmount:  req.TotalAmount,
		InterestRate: req.InterestRate,
		TenureMonths: req.TenureMonths,
		StartDate:    startDate,
		EMIAmount:    emi,
	}

	if err := database.DB.Create(&loan).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建贷款失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", loan)
}

// List 获取贷款列表
// @Summary 获取贷款列表
// @Description 获取用户全部贷款，附带按起始日期推算的还款进度（假设按期还款的投影，不记录真实还款事件）
// @Tags 贷款
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} LoanView "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /loans/{email} [get]
func (h *LoanHandler) List(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	var loans []models.Loan
	if err := database.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&loans).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	now := time.Now()
	views := make([]LoanView, 0, len(loans))
	for _, l := range loans {
		p := l.ProgressAt(now)
		views = append(views, LoanView{
			Loan:            l,
			MonthsPaid:      p.MonthsPaid,
			AmountPaid:      p.AmountPaid,
			AmountRemaining: p.AmountRemaining,
			Progress:        p.Progress,
		})
	}

	c.JSON(200, views)
}

// Delete 删除贷款
// @Summary 删除贷款
// @Description 删除指定贷款
// @Tags 贷款
// @Produce json
// @Param id path int true "贷款ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "贷款不存在"
// @Router /loans/{id} [delete]
func (h *LoanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var loan models.Loan
	if err := database.DB.First(&loan, uint(id)).Error; err != nil {
		NotFound(c, "贷款不存在")
		return
	}

	if err := database.DB.Delete(&loan).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
