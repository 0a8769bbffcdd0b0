package helper

import (
	"errors"
	"os"
	"time"

	"store_manager/database"
	"store_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GenerateAccessToken issues a 7-day HS256 token carrying userId and email.
func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JwtSecret, nil
	})

	return token, err
}

// ClaimFromToken extracts the token claim from a parsed JWT.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid claims")
	}

	userId, ok := claims["userId"].(float64)
	if !ok || userId == 0 {
		return model.TokenClaim{}, errors.New("missing userId claim")
	}
	email, _ := claims["email"].(string)

	return model.TokenClaim{UserId: uint(userId), Email: email}, nil
}

// GetInfoUserFromToken reads the claim that middleware.Protected stored.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, errors.New("not authenticated")
	}
	return ClaimFromToken(token)
}

// GetMembership returns the user's membership in a store, nil when absent.
func GetMembership(storeId, userId uint) (*model.StoreMember, error) {
	var member model.StoreMember
	err := database.DB.
		Where("store_id = ? AND user_id = ?", storeId, userId).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}
