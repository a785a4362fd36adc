package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yeisme/drivevault/pkg/configs"
)

const hoursPerDay = 24

var (
	// ErrInvalidToken token 非法、过期或签名不匹配.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// NewToken 为指定用户签发 Bearer token.
func NewToken(cfg configs.AuthConfig, userID string) (string, error) {
	now := time.Now().UTC()
	ttl := time.Duration(cfg.TokenTTLDays) * hoursPerDay * time.Hour

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    "drivevault",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ParseToken 校验 token 并返回其中的用户 ID.
// 过期、签名错误、算法不符等一律返回 ErrInvalidToken，不区分失败原因.
func ParseToken(cfg configs.AuthConfig, tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return []byte(cfg.Secret), nil
		})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
