package services

import (
	"fmt"
	"time"

	"inventori/internal/apperrors"
	"inventori/internal/models"
	"inventori/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Register hashes the password and creates the user. The unique index on
// username is the only conflict check; a concurrent duplicate insert
// loses with a conflict error rather than racing a prior lookup.
func (s *AuthService) Register(username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	return s.userRepo.Create(user)
}

// Login authenticates a user and returns a signed JWT if successful.
// Unknown username and wrong password produce the identical error so
// usernames cannot be enumerated.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return "", apperrors.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return tokenString, nil
}

// VerifyToken validates a JWT and resolves it to the user it was issued
// for. A token whose user has since been removed is rejected.
func (s *AuthService) VerifyToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, apperrors.Unauthorized("Access denied. Token expired.")
		}
		return nil, apperrors.Unauthorized("Access denied. Invalid token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("Access denied. Invalid token.")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, apperrors.Unauthorized("Access denied. Invalid token.")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperrors.Unauthorized("Access denied. User not found.")
	}
	return user, nil
}
