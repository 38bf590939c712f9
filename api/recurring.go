package api

import (
	"fmt"
	"strconv"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
)

// RecurringHandler 周期账单处理器
// 周期账单即 is_recurring=true 的交易记录：同一 (类别, 备注) 签名下最新的一条为当前生效模板
type RecurringHandler struct{}

// NewRecurringHandler 创建周期账单处理器
func NewRecurringHandler() *RecurringHandler {
	return &RecurringHandler{}
}

// RecurringView 周期账单视图
type RecurringView struct {
	TransactionView
	LastPaid string `json:"last_paid"` // today / yesterday / "N days ago" / 绝对日期 / never
}

// List 获取生效中的周期账单
// @Summary 获取周期账单列表
// @Description 返回用户当前生效的周期账单模板（同一类别+备注签名下最新的一条），附带最近一次支付时间的展示文案
// @Tags 周期账单
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} RecurringView "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /recurring/{email} [get]
func (h *RecurringHandler) List(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	var templates []TransactionView
	if err := database.DB.Table("transactions").
		Select("transactions.id, transactions.user_id, transactions.category_id, transactions.amount, "+
			"transactions.type, transactions.payment_mode, transactions.date, transactions.note, "+
			"transactions.is_recurring, categories.name AS category, categories.name AS category_name, "+
			"categories.color, categories.icon").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.is_recurring = ?", user.ID, true).
		Order("transactions.date DESC, transactions.id DESC").
		Scan(&templates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 同一签名只保留最新的模板
	type signature struct {
		CategoryID uint
		Note       string
	}
	seen := make(map[signature]bool, len(templates))
	now := time.Now()
	views := make([]RecurringView, 0, len(templates))
	for _, tpl := range templates {
		sig := signature{CategoryID: tpl.CategoryID, Note: tpl.Note}
		if seen[sig] {
			continue
		}
		seen[sig] = true

		// 最近一次按该签名生成的具体入账
		var lastTx models.Transaction
		lastPaid := "never"
		if err := database.DB.Where(
			"user_id = ? AND category_id = ? AND note = ? AND is_recurring = ?",
			user.ID, tpl.CategoryID, tpl.Note, false,
		).Order("date DESC, id DESC").First(&lastTx).Error; err == nil {
			lastPaid = lastPaidLabel(lastTx.Date, now)
		}

		views = append(views, RecurringView{TransactionView: tpl, LastPaid: lastPaid})
	}

	c.JSON(200, views)
}

// Process 处理周期账单（入账一期）
// @Summary 周期账单入账
// @Description 按模板克隆一条以今天为日期的具体交易记录（克隆不再是模板，is_recurring=false）；模板本身不受影响，直到被显式停用
// @Tags 周期账单
// @Produce json
// @Param id path int true "模板交易ID"
// @Success 200 {object} Response{data=models.Transaction} "入账成功"
// @Failure 400 {object} Response "该记录不是周期账单模板"
// @Failure 404 {object} Response "记录不存在"
// @Router /recurring/process/{id} [post]
func (h *RecurringHandler) Process(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tpl models.Transaction
	if err := database.DB.First(&tpl, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}
	if !tpl.IsRecurring {
		BadRequest(c, "该记录不是周期账单模板")
		return
	}

	today := time.Now()
	clone := models.Transaction{
		UserID:      tpl.UserID,
		CategoryID:  tpl.CategoryID,
		Amount:      tpl.Amount,
		Type:        tpl.Type,
		PaymentMode: tpl.PaymentMode,
		Date:        time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local),
		Note:        tpl.Note,
		IsRecurring: false, // 克隆是普通入账，避免模板随入账越滚越多
	}

	if err := database.DB.Create(&clone).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "入账失败"))
		return
	}

	SuccessWithMessage(c, "入账成功", clone)
}

// Stop 停用周期账单
// @Summary 停用周期账单
// @Description 将模板的周期标记置为 false；已生成的入账历史保留不动
// @Tags 周期账单
// @Produce json
// @Param id path int true "模板交易ID"
// @Success 200 {object} Response "已停用"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /recurring/stop/{id} [delete]
func (h *RecurringHandler) Stop(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var tpl models.Transaction
	if err := database.DB.First(&tpl, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Model(&tpl).Update("is_recurring", false).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "停用失败"))
		return
	}

	SuccessWithMessage(c, "已停用", nil)
}

// lastPaidLabel 最近一次支付时间的展示文案
// 今天/昨天/N days ago（30天内）/绝对日期
func lastPaidLabel(paid, now time.Time) string {
	paidDay := time.Date(paid.Year(), paid.Month(), paid.Day(), 0, 0, 0, 0, time.Local)
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	days := int(nowDay.Sub(paidDay).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days <= 30:
		return fmt.Sprintf("%d days ago", days)
	default:
		return paid.Format("2006-01-02")
	}
}
