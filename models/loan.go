package models

import (
	"math"
	"time"
)

// Loan 贷款模型
// emi_amount 在创建时按标准年金公式计算一次并持久化，之后不随输入重算；
// 还款进度按 start_date 起经过的整月数推算（假设按期还款），不记录真实还款事件
type Loan struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	TotalAmount  float64   `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	InterestRate float64   `json:"interest_rate" gorm:"type:decimal(5,2);not null"` // 年利率（百分数）
	TenureMonths int       `json:"tenure_months" gorm:"not null"`
	StartDate    time.Time `json:"start_date" gorm:"not null"`
	EMIAmount    float64   `json:"emi_amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	User         User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Loan) TableName() string {
	return "loans"
}

// LoanProgress 贷款还款进度（读侧投影）
type LoanProgress struct {
	MonthsPaid      int     `json:"months_paid"`
	AmountPaid      float64 `json:"amount_paid"`
	AmountRemaining float64 `json:"amount_remaining"`
	Progress        float64 `json:"progress"`
}

// CalculateEMI 按标准等额本息公式计算每月还款额
// principal: 本金，annualRate: 年利率（百分数），tenureMonths: 期数
// 月利率 i = r/1200；i 为 0 时退化为本金平均分摊
func CalculateEMI(principal, annualRate float64, tenureMonths int) float64 {
	if tenureMonths <= 0 {
		return 0
	}
	i := annualRate / 1200
	if i == 0 {
		return principal / float64(tenureMonths)
	}
	factor := math.Pow(1+i, float64(tenureMonths))
	return principal * i * factor / (factor - 1)
}

// ProgressAt 计算截至 now 的还款进度
// 已还月数 = min(起始日期后经过的整月数, 期数)；已还金额 = 已还月数 × EMI；
// 剩余金额 = EMI × 期数 − 已还金额
func (l *Loan) ProgressAt(now time.Time) LoanProgress {
	months := elapsedMonths(l.StartDate, now)
	if months > l.TenureMonths {
		months = l.TenureMonths
	}

	totalPayable := l.EMIAmount * float64(l.TenureMonths)
	paid := float64(months) * l.EMIAmount

	var progress float64
	if l.TenureMonths > 0 {
		progress = float64(months) / float64(l.TenureMonths) * 100
	}

	return LoanProgress{
		MonthsPaid:      months,
		AmountPaid:      paid,
		AmountRemaining: totalPayable - paid,
		Progress:        progress,
	}
}

// elapsedMonths 计算 start 到 now 之间经过的整月数（向下取整，最小为 0）
func elapsedMonths(start, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if now.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
