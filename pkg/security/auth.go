package security

import (
	"fmt"
	"os"
	"time"

	"instock/internal/repository"
	"instock/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(userID, role, username string) (string, error) {
	claims := jwt.MapClaims{
		"userID":   userID,
		"role":     role,
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// AuthenticateUser checks the credentials against the users table.
func AuthenticateUser(username, password string, repo *repository.Repository) (*models.User, error) {
	var user models.User
	query := repo.GoquDBWrapper.Select("id", "username", "fullname", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"username": username})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("unknown user %s", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	return &user, nil
}

func getTokenFromContext(c *gin.Context) (*jwt.Token, error) {
	raw, exists := c.Get("token")
	if !exists {
		return nil, fmt.Errorf("no token in context")
	}

	token, ok := raw.(*jwt.Token)
	if !ok {
		return nil, fmt.Errorf("token has unexpected type")
	}

	return token, nil
}

func GetUserIDFromToken(c *gin.Context) (string, error) {
	token, err := getTokenFromContext(c)
	if err != nil {
		return "", err
	}

	claims := token.Claims.(jwt.MapClaims)
	userID, ok := claims["userID"].(string)
	if !ok {
		return "", fmt.Errorf("userID is not a string")
	}

	return userID, nil
}
