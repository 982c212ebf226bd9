package security

import (
	"Agora/internal/pkg/consts"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 外部认证服务签发的 token 内容
type UserClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *UserClaims) IsAdmin() bool {
	return c.Role == consts.RoleAdmin
}
