package middlewares

import (
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/auth"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	ServerInternalError = "server.internal_error"
)

func Authenticate(c *fiber.Ctx) error {
	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	token = strings.Replace(token, "Bearer ", "", -1)

	var claims auth.Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	user := &models.User{}
	if result := config.DataBase.First(&user, "id = ?", claims.UID); result.Error != nil {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	if user.State != "active" {
		return c.Status(401).JSON(fiber.Map{
			"errors": []string{AuthzInvalidSession},
		})
	}

	c.Locals("CurrentUser", user)

	return c.Next()
}
