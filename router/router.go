package router

import (
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证相关路由（登录接口做限流，防止暴力破解）
	authHandler := api.NewAuthHandler(cfg)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", middleware.IPRateLimit(5, time.Minute), authHandler.Login)
		auth.POST("/google", authHandler.GoogleLogin)

		// 邮箱验证码登录
		auth.POST("/send-code", middleware.IPRateLimit(3, time.Minute), authHandler.SendLoginCode)
		auth.POST("/otp-login", middleware.IPRateLimit(5, time.Minute), authHandler.OTPLogin)

		// JWT 有效性校验
		auth.GET("/verify", middleware.JWTAuth(), authHandler.Verify)
	}

	// 仪表盘
	dashboardHandler := api.NewDashboardHandler()
	r.GET("/dashboard/:email", dashboardHandler.Get)

	// 交易记录
	transactionHandler := api.NewTransactionHandler()
	r.POST("/transactions", transactionHandler.Create)
	r.GET("/transactions/all/:email", transactionHandler.ListAll)
	r.DELETE("/transactions/:id", transactionHandler.Delete)

	// 类别
	categoryHandler := api.NewCategoryHandler()
	r.GET("/categories/:email", categoryHandler.List)
	r.POST("/categories", categoryHandler.Create)
	r.DELETE("/categories/:id", categoryHandler.Delete)

	// 预算
	budgetHandler := api.NewBudgetHandler()
	r.POST("/budgets", budgetHandler.Set)
	r.GET("/budgets/history/:email", budgetHandler.History)
	r.GET("/budgets/:email", budgetHandler.Status)

	// 储蓄目标
	goalHandler := api.NewGoalHandler()
	r.POST("/goals", goalHandler.Create)
	r.PUT("/goals/add-money", goalHandler.AddMoney)
	r.GET("/goals/:email", goalHandler.List)
	r.DELETE("/goals/:id", goalHandler.Delete)

	// 贷款
	loanHandler := api.NewLoanHandler()
	r.POST("/loans", loanHandler.Create)
	r.GET("/loans/:email", loanHandler.List)
	r.DELETE("/loans/:id", loanHandler.Delete)

	// 周期账单
	recurringHandler := api.NewRecurringHandler()
	r.GET("/recurring/:email", recurringHandler.List)
	r.POST("/recurring/process/:id", recurringHandler.Process)
	r.DELETE("/recurring/stop/:id", recurringHandler.Stop)

	// 分析统计
	analyticsHandler := api.NewAnalyticsHandler()
	r.GET("/analytics/category-monthly/:email", analyticsHandler.CategoryMonthly)
	r.GET("/analytics/:email", analyticsHandler.Overview)
	r.GET("/income/daily/:email", analyticsHandler.DailyIncome)
	r.GET("/income/monthly/:email", analyticsHandler.MonthlyIncome)

	// 导出
	exportHandler := api.NewExportHandler()
	export := r.Group("/export")
	{
		export.GET("/csv/:email", exportHandler.ExportCSV)
		export.GET("/excel/:email", exportHandler.ExportExcel)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
