package api

import (
	"net/http"
	"time"

	"fintrack/config"
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"Test User"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleLoginRequest Google 登录请求（前端完成 OAuth 后回传用户信息）
type GoogleLoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@gmail.com"`
	Name  string `json:"name" binding:"omitempty,max=100" example:"Test User"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号，同时为其种子写入默认收支类别
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=LoginResponse} "注册成功"
// @Failure 400 {object} Response "请求参数错误或邮箱已注册"
// @Failure 500 {object} Response "服务器错误"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 检查邮箱是否已注册
	if _, err := findUserByEmail(req.Email); err == nil {
		BadRequest(c, "该邮箱已被注册")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hashedPassword),
		AuthProvider: models.AuthProviderPassword,
	}

	// 创建用户并种子写入默认类别
	if err := createUserWithDefaults(&user); err != nil {
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	SuccessWithMessage(c, "注册成功", LoginResponse{Token: token, UserInfo: user})
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱+密码登录，获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.Email)
	if err != nil {
		Unauthorized(c, "邮箱或密码错误")
		return
	}

	// OAuth/验证码用户没有本地密码
	if user.Password == "" {
		Unauthorized(c, "该账号未设置密码，请使用原登录方式")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: *user})
}

// GoogleLogin Google 登录
// @Summary Google 登录
// @Description 使用 Google OAuth 身份登录；用户不存在时在首次登录时创建并种子写入默认类别
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "Google 用户信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := findUserByEmail(req.Email)
	if err != nil {
		// 首次登录，创建用户
		newUser := models.User{
			Name:         req.Name,
			Email:        req.Email,
			AuthProvider: models.AuthProviderGoogle,
		}
		if err := createUserWithDefaults(&newUser); err != nil {
			InternalError(c, SafeErrorMessage(err, "创建用户失败"))
			return
		}
		user = &newUser
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: *user})
}

// Verify 校验当前登录态
// @Summary 校验登录态
// @Description 校验 JWT token 并返回当前用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "token 有效"
// @Failure 401 {object} Response "未授权"
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	Success(c, user)
}

// ============== 邮箱验证码登录 ==============

// SendLoginCodeRequest 发送登录验证码请求
type SendLoginCodeRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// SendLoginCode 发送邮箱登录验证码
// @Summary 发送登录验证码
// @Description 向邮箱发送6位登录验证码，10分钟有效，1分钟内不可重发
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body SendLoginCodeRequest true "邮箱"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 429 {object} Response "发送过于频繁"
// @Failure 500 {object} Response "服务器错误"
// @Router /auth/send-code [post]
func (h *AuthHandler) SendLoginCode(c *gin.Context) {
	var req SendLoginCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请输入有效的邮箱地址")
		return
	}

	// 检查是否有未使用的有效验证码（防止频繁发送）
	var existingCode models.EmailVerification
	if err := database.DB.Where("email = ? AND type = ? AND used = ? AND expires_at > ?",
		req.Email, models.VerificationTypeLogin, false, time.Now()).First(&existingCode).Error; err == nil {
		// 如果距离上次发送不到1分钟，拒绝发送
		if time.Since(existingCode.CreatedAt) < time.Minute {
			c.JSON(http.StatusTooManyRequests, Response{
				Code:    http.StatusTooManyRequests,
				Message: "请求过于频繁，请稍后再试",
			})
			return
		}
		// 使旧验证码失效
		database.DB.Model(&existingCode).Update("used", true)
	}

	code, err := models.GenerateVerificationCode()
	if err != nil {
		InternalError(c, "生成验证码失败")
		return
	}

	verification := models.EmailVerification{
		Email:     req.Email,
		Code:      code,
		Type:      models.VerificationTypeLogin,
		ExpiresAt: time.Now().Add(10 * time.Minute), // 10分钟有效期
	}

	if err := database.DB.Create(&verification).Error; err != nil {
		InternalError(c, "保存验证码失败")
		return
	}

	if err := h.emailService.SendVerificationEmail(req.Email, code); err != nil {
		database.DB.Delete(&verification)
		InternalError(c, SafeErrorMessage(err, "邮件发送失败"))
		return
	}

	SuccessWithMessage(c, "验证码已发送，请查收邮件", nil)
}

// OTPLoginRequest 验证码登录请求
type OTPLoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
	Code  string `json:"code" binding:"required,len=6" example:"123456"`
}

// OTPLogin 邮箱验证码登录
// @Summary 验证码登录
// @Description 校验邮箱验证码并登录；用户不存在时在首次登录时创建并种子写入默认类别
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body OTPLoginRequest true "邮箱和验证码"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "验证码错误或已过期"
// @Router /auth/otp-login [post]
func (h *AuthHandler) OTPLogin(c *gin.Context) {
	var req OTPLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误")
		return
	}

	var verification models.EmailVerification
	if err := database.DB.Where("email = ? AND code = ? AND type = ?",
		req.Email, req.Code, models.VerificationTypeLogin).
		Order("id DESC").First(&verification).Error; err != nil {
		BadRequest(c, "验证码错误")
		return
	}

	if !verification.IsValid() {
		if verification.Used {
			BadRequest(c, "验证码已被使用")
		} else {
			BadRequest(c, "验证码已过期，请重新获取")
		}
		return
	}

	// 标记验证码已使用
	if err := database.DB.Model(&verification).Update("used", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "登录失败"))
		return
	}

	user, err := findUserByEmail(req.Email)
	if err != nil {
		// 首次登录，创建用户
		newUser := models.User{
			Email:        req.Email,
			AuthProvider: models.AuthProviderOTP,
		}
		if err := createUserWithDefaults(&newUser); err != nil {
			InternalError(c, SafeErrorMessage(err, "创建用户失败"))
			return
		}
		user = &newUser
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: *user})
}
