package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	AccessTokenCookie = "access_token"
	localsSession     = "session"
)

type Auth struct {
	Secret string
	TTL    time.Duration
}

func SetupAuth(s string, ttl time.Duration) Auth {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return Auth{
		Secret: s,
		TTL:    ttl,
	}
}

func (a Auth) GenerateToken(userID uuid.UUID, email string, role domain.Role) (string, error) {
	if userID == uuid.Nil || email == "" || !role.Valid() {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(a.TTL).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.Session, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.Session{}, errors.New("missing token")
	}

	// accepts "Bearer <token>" and "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.Session{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return dto.Session{}, errors.New("token expired")
		}
		return dto.Session{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.Session{}, errors.New("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return dto.Session{}, errors.New("missing expiry")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return dto.Session{}, errors.New("invalid user id in token")
	}
	email, _ := claims["email"].(string)
	role := domain.Role(stringClaim(claims, "role"))
	if !role.Valid() {
		return dto.Session{}, errors.New("invalid role in token")
	}

	var iat time.Time
	if issued, err := claims.GetIssuedAt(); err == nil && issued != nil {
		iat = issued.Time
	}

	return dto.Session{
		UserID:    userID,
		Email:     email,
		Role:      role,
		IssuedAt:  iat,
		ExpiresAt: exp.Time,
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

func SetSession(ctx *fiber.Ctx, s dto.Session) {
	ctx.Locals(localsSession, s)
}

// GetCurrentUser returns the request session. Anonymous requests get a
// session with role none and an error.
func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.Session, error) {
	s, ok := ctx.Locals(localsSession).(dto.Session)
	if !ok || s.UserID == uuid.Nil {
		return dto.Session{Role: domain.RoleNone}, errors.New("missing auth user in context")
	}
	return s, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}
