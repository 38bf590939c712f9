package api

import (
	"strings"

	"fintrack/database"
	"fintrack/models"

	"gorm.io/gorm"
)

// findUserByEmail 按邮箱查找用户
func findUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// createUserWithDefaults 创建用户并种子写入默认类别（单事务，保证要么都有要么都无）
func createUserWithDefaults(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(models.DefaultCategories(user.ID)).Error
	})
}
