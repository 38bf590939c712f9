package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// AuthProviderPassword 邮箱+密码登录
	AuthProviderPassword = "password"
	// AuthProviderGoogle Google OAuth 登录
	AuthProviderGoogle = "google"
	// AuthProviderOTP 邮箱验证码登录
	AuthProviderOTP = "otp"
)

// User 用户模型
// 首次登录/注册时创建，正常情况下不做物理删除
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:100"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password     string         `json:"-" gorm:"size:255"` // OAuth/验证码用户可为空
	AuthProvider string         `json:"auth_provider" gorm:"size:20;default:password;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
