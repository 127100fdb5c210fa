package constants

// エラーメッセージ
const (
	ErrEmailRegistered      = "Email already registered"
	ErrIncorrectCredentials = "Incorrect email or password"
	ErrUserNotFound         = "User not found"
	ErrUnexpected           = "Unexpected error"
	ErrInvalidCategoryID    = "Invalid category id"
)

// ページネーションのデフォルト値
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// トークン種別（/tokenレスポンスのtoken_type）
const TokenTypeBearer = "bearer"
