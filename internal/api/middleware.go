package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

// AdminMiddleware пускает только запросы с токеном, подписанным api.secret_key.
// Токен берётся из cookie secret_token или из заголовка Authorization: Bearer.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := bearerToken(ctx.Request().Header.Get(constants.HeaderAuthorization))
		if raw == "" {
			cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
			if err != nil {
				return constants.ErrUnauthorized
			}
			raw = cookie.Value
		}

		token, err := utils.ParseAuthToken(raw)
		if err != nil {
			return err
		}

		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" || token.Secret != secret {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
