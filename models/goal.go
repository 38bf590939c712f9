package models

import (
	"math"
	"time"
)

const (
	// GoalStatusReached 已达成
	GoalStatusReached = "reached"
	// GoalStatusOverdue 截止日期已过且未达成
	GoalStatusOverdue = "overdue"
	// GoalStatusOnTrack 进行中
	GoalStatusOnTrack = "on_track"
)

// Goal 储蓄目标模型
// current_amount 只通过显式的存入/取出增量变动，不从账本推导；任何时刻不允许为负
type Goal struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	Name          string     `json:"name" gorm:"size:100;not null"`
	TargetAmount  float64    `json:"target_amount" gorm:"type:decimal(10,2);not null"`
	CurrentAmount float64    `json:"current_amount" gorm:"type:decimal(10,2);default:0"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	User          User       `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Goal) TableName() string {
	return "goals"
}

// GoalSuggestion 目标达成建议（读侧计算）
type GoalSuggestion struct {
	Status          string  `json:"status"` // reached / overdue / on_track
	MonthsLeft      int     `json:"months_left"`
	MonthlyRequired float64 `json:"monthly_required"`
}

// Suggest 根据截止日期给出每月需储蓄金额
// 已达成返回 reached；截止日期已过且未达成返回 overdue（不给出无意义的负数月供）；
// 未设置截止日期时 months_left 为 0、monthly_required 为 0
func (g *Goal) Suggest(now time.Time) GoalSuggestion {
	if g.CurrentAmount >= g.TargetAmount {
		return GoalSuggestion{Status: GoalStatusReached}
	}
	if g.Deadline == nil {
		return GoalSuggestion{Status: GoalStatusOnTrack}
	}

	monthsLeft := monthsUntil(now, *g.Deadline)
	if monthsLeft <= 0 {
		return GoalSuggestion{Status: GoalStatusOverdue}
	}

	required := math.Ceil((g.TargetAmount - g.CurrentAmount) / float64(monthsLeft))
	return GoalSuggestion{
		Status:          GoalStatusOnTrack,
		MonthsLeft:      monthsLeft,
		MonthlyRequired: required,
	}
}

// monthsUntil 计算 now 到 deadline 之间的月数（向上取整，最小为 0）
func monthsUntil(now, deadline time.Time) int {
	if !deadline.After(now) {
		return 0
	}
	days := deadline.Sub(now).Hours() / 24
	return int(math.Ceil(days / 30))
}
