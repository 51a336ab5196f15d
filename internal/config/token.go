package config

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

const tokenExpiryWarning = 10 * time.Minute

var errNoExpiry = errors.New("token has no exp claim")

// TokenExpiry زمان انقضای توکن دسترسی را بدون بررسی امضا می‌خواند.
// سرویس ارزیابی گاهی claimها را داخل کلید "MapClaims" قرار می‌دهد.
func TokenExpiry(token string) (time.Time, error) {
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errNoExpiry
	}

	if exp, ok := numericClaim(claims["exp"]); ok {
		return time.Unix(exp, 0), nil
	}
	if nested, ok := claims["MapClaims"].(map[string]interface{}); ok {
		if exp, ok := numericClaim(nested["exp"]); ok {
			return time.Unix(exp, 0), nil
		}
	}
	return time.Time{}, errNoExpiry
}

// CheckAccessToken فقط هشدار لاگ می‌کند؛ توکن منقضی مانع اجرای سرور نیست
func CheckAccessToken(token string, now time.Time, logger *zap.Logger) {
	if token == "" {
		logger.Warn("⚠️ REMOTE_ACCESS_TOKEN is not set, remote requests will be unauthenticated")
		return
	}

	exp, err := TokenExpiry(token)
	if err != nil {
		logger.Warn("⚠️ Could not read access token expiry", zap.Error(err))
		return
	}

	switch {
	case !now.Before(exp):
		logger.Warn("⚠️ Access token has expired", zap.Time("expiresAt", exp))
	case exp.Sub(now) < tokenExpiryWarning:
		logger.Warn("⚠️ Access token expires soon", zap.Time("expiresAt", exp), zap.Duration("remaining", exp.Sub(now)))
	default:
		logger.Info("Access token valid", zap.Time("expiresAt", exp))
	}
}

func numericClaim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}
