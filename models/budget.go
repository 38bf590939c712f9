package models

import (
	"time"
)

// Budget 预算模型
// 每个用户每个类别只有一条当前限额，周期固定为自然月；
// 再次设置同一类别的预算会覆盖限额，不按月份留存历史版本，
// 历史月份回看时沿用当前限额（已知简化，见 DESIGN.md）
type Budget struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_budget_category"`
	CategoryID  uint      `json:"category_id" gorm:"not null;uniqueIndex:idx_user_budget_category"`
	LimitAmount float64   `json:"budget_limit" gorm:"column:limit_amount;type:decimal(10,2);not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
	Category    Category  `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}

// BudgetUsage 某类别某月的预算消耗（纯读侧投影，不落库）
type BudgetUsage struct {
	Name        string  `json:"name"`
	BudgetLimit float64 `json:"budget_limit"`
	Spent       float64 `json:"spent"`
	Percentage  float64 `json:"percentage"`
	IsOver      bool    `json:"is_over"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
}

// UsagePercentage 计算消耗百分比，限额为 0 时返回 0（不抛除零错误）
func UsagePercentage(spent, limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return spent / limit * 100
}
