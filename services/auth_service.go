package services

import (
	"errors"

	"gymsphere/config"
	"gymsphere/models"
	"gymsphere/utils"

	"github.com/google/uuid"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// IssueResetToken stores and returns a one-time password reset token
// for the account.
func IssueResetToken(email string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	token := uuid.NewString()
	user.ResetToken = token
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}
	return token, nil
}

func ResetPassword(token, newPassword string) error {
	if token == "" {
		return errors.New("invalid token")
	}

	var user models.User
	if err := config.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return errors.New("invalid token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	return config.DB.Save(&user).Error
}
