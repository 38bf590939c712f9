package api

import (
	"strconv"
	"strings"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler 类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	UserEmail string `json:"user_email" binding:"required,email" example:"test@example.com"`
	Name      string `json:"name" binding:"required,min=1,max=50" example:"Coffee"`
	Type      string `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Color     string `json:"color" binding:"omitempty,max=20" example:"#f59e0b"`
	Icon      string `json:"icon" binding:"omitempty,max=10" example:"☕"`
}

// List 获取用户类别列表
// @Summary 获取类别列表
// @Description 获取用户的全部收支类别，按创建顺序排列
// @Tags 类别
// @Produce json
// @Param email path string true "用户邮箱"
// @Success 200 {array} models.Category "获取成功"
// @Failure 404 {object} Response "用户不存在"
// @Router /categories/{email} [get]
func (h *CategoryHandler) List(c *gin.Context) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	var list []models.Category
	if err := database.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if list == nil {
		list = []models.Category{}
	}

	c.JSON(200, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 创建用户自定义类别；同一用户内类别名称唯一
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "用户不存在"
// @Failure 409 {object} Response "类别名称已存在"
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.UserEmail)
	if err != nil {
		NotFound(c, "用户不存在")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	// 同一用户内唯一
	var existing models.Category
	if err := database.DB.Where("user_id = ? AND name = ?", user.ID, req.Name).First(&existing).Error; err == nil {
		Conflict(c, "类别名称已存在")
		return
	}

	color := req.Color
	if color == "" {
		color = "#64748b" // 默认灰色
	}
	icon := req.Icon
	if icon == "" {
		icon = "🏷️"
	}

	cat := models.Category{
		UserID: user.ID,
		Name:   req.Name,
		Type:   req.Type,
		Color:  color,
		Icon:   icon,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", cat)
}

// Delete 删除类别（级联删除其交易和预算）
// @Summary 删除类别
// @Description 删除用户自定义类别，并在同一事务内级联删除该类别的全部交易和预算。默认类别不可删除。此操作不可逆，调用方需二次确认。
// @Tags 类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 403 {object} Response "默认类别不可删除"
// @Failure 404 {object} Response "类别不存在"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, uint(id)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	if cat.IsDefault {
		Forbidden(c, "默认类别不可删除")
		return
	}

	// 级联删除必须是全或无：类别、交易、预算在同一事务内删除
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", cat.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", cat.ID).Delete(&models.Budget{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cat).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
