package auth

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/mq_client"
)

type RegisterParams struct {
	Username     string `json:"username" form:"username" validate:"required"`
	Email        string `json:"email" form:"email" validate:"required|email"`
	PhoneNumber  string `json:"phone_number" form:"phone_number" validate:"required"`
	Password     string `json:"password" form:"password" validate:"required|minLen:8"`
	ReferralCode string `json:"referral_code" form:"referral_code"`
}

type LoginParams struct {
	Email    string `json:"email" form:"email" validate:"required|email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type Claims struct {
	UID          uint64 `json:"uid"`
	Email        string `json:"email"`
	MemberStatus string `json:"member_status"`

	jwt.StandardClaims
}

func Register(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	params := new(RegisterParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	var referrer *models.User
	if len(params.ReferralCode) > 0 {
		var err error
		referrer, err = models.FindUserByReferralCode(config.DataBase, params.ReferralCode)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"auth.register.invalid_referral_code"},
			})
		}
		if err != nil {
			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	user := &models.User{
		Username:     params.Username,
		Email:        params.Email,
		PhoneNumber:  params.PhoneNumber,
		PasswordHash: string(hash),
		ReferralCode: models.GenerateReferralCode(config.DataBase),
	}
	if referrer != nil {
		user.ReferredByID = &referrer.ID
	}

	if result := config.DataBase.Create(user); result.Error != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"auth.register.taken"},
		})
	}

	// Upline "new referral" notifications fan out through the daemon; a
	// broker outage costs notifications, not registrations.
	payload_message, _ := json.Marshal(map[string]uint64{"user_id": user.ID})
	if err := mq_client.Enqueue("upline_registration", payload_message); err != nil {
		config.Logger.Warnf("Failed to enqueue upline notification for user %d: %v", user.ID, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":            user.ID,
		"referral_code": user.ReferralCode,
	})
}

func Login(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	params := new(LoginParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	var user *models.User
	if result := config.DataBase.First(&user, "email = ?", params.Email); result.Error != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"auth.login.invalid_credentials"},
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"auth.login.invalid_credentials"},
		})
	}

	token, err := IssueToken(user)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"token": token,
	})
}

func IssueToken(user *models.User) (string, error) {
	claims := Claims{
		UID:          user.ID,
		Email:        user.Email,
		MemberStatus: user.MemberStatus,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
