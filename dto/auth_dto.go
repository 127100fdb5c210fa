package dto

import "grocery-api/models"

// SignupInput 必須チェックは「キーが存在するか」のみ（空文字やゼロ値は受け付ける）
// そのためゼロ値と未指定を区別できるようポインタで受ける
type SignupInput struct {
	Email    *string `json:"email" binding:"required"`
	FullName *string `json:"full_name" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// TokenInput /tokenはOAuth2のパスワードグラント形式（form-encoded）で受け取る
type TokenInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse ハッシュ済みパスワードは読み取りビューに含めない
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		IsActive: user.IsActive,
	}
}
