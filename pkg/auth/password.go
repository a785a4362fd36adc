// Package auth 提供密码散列与 Bearer token 的签发/校验.
// 密码使用 bcrypt 加盐散列，token 为 HS256 签名的 JWT，默认 7 天过期.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword 生成密码的 bcrypt 散列.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword 校验明文密码与散列是否匹配.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
