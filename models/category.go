package models

import (
	"time"
)

const (
	// TypeIncome 收入
	TypeIncome = "income"
	// TypeExpense 支出
	TypeExpense = "expense"
)

// Category 收支类别（按用户隔离）
// 交易和预算通过 category_id 引用类别；删除类别会级联删除其交易和预算（物理删除）
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_category_name"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex:idx_user_category_name"`
	Type      string    `json:"type" gorm:"size:10;not null;index"` // income / expense
	Color     string    `json:"color" gorm:"size:20;default:#64748b"`
	Icon      string    `json:"icon" gorm:"size:10"`
	IsDefault bool      `json:"is_default" gorm:"default:false"` // 默认类别不可删除
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}

// IsValidType 校验类别类型取值
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// DefaultCategories 新用户的默认类别集合（注册时种子写入）
func DefaultCategories(userID uint) []Category {
	defaults := []struct {
		Name  string
		Type  string
		Color string
		Icon  string
	}{
		{"Salary", TypeIncome, "#10b981", "💼"},
		{"Freelance", TypeIncome, "#3b82f6", "💻"},
		{"Investments", TypeIncome, "#a855f7", "📈"},
		{"Food", TypeExpense, "#ef4444", "🍜"},
		{"Transport", TypeExpense, "#3b82f6", "🚗"},
		{"Shopping", TypeExpense, "#a855f7", "🛍️"},
		{"Entertainment", TypeExpense, "#ec4899", "🎬"},
		{"Bills", TypeExpense, "#f59e0b", "🧾"},
		{"Health", TypeExpense, "#10b981", "🏥"},
		{"Other", TypeExpense, "#64748b", "🏷️"},
	}

	cats := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		cats = append(cats, Category{
			UserID:    userID,
			Name:      d.Name,
			Type:      d.Type,
			Color:     d.Color,
			Icon:      d.Icon,
			IsDefault: true,
		})
	}
	return cats
}
