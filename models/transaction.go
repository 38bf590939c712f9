package models

import (
	"time"
)

// Transaction 交易记录模型
// 创建后不可修改，只能删除后重建；is_recurring=true 的记录同时充当周期账单模板
type Transaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Type        string    `json:"type" gorm:"size:10;not null;index"` // income / expense，必须与类别类型一致
	PaymentMode string    `json:"payment_mode" gorm:"size:20;default:Card"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	Note        string    `json:"note" gorm:"size:255"`
	IsRecurring bool      `json:"is_recurring" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
	Category    Category  `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
