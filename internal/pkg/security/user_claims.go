package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims Supabase 签发的访问令牌中我们关心的业务信息
type UserClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID Supabase 将用户 ID 放在 sub 中
func (c *UserClaims) UserID() string {
	return c.Subject
}
