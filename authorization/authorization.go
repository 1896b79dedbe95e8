package authorization

import (
	"log"
	"os"
	"time"

	"github.com/cristalhq/jwt/v4"
	"rentride_service/domain"
	"rentride_service/errors"
)

var jwtKey = secretKey()

var verifier, _ = jwt.NewVerifierHS(jwt.HS256, jwtKey)

func secretKey() []byte {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		key = "rentride_dev_secret"
	}
	return []byte(key)
}

const TokenValidity = 60 * time.Minute

// Claims carried by the bearer token. Role and name are re-resolved against
// the user store on every request, the token copies exist for clients only.
type Claims struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func GenerateToken(user *domain.User, tokenID string) (string, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, jwtKey)
	if err != nil {
		log.Println(err)
		return "", err
	}

	builder := jwt.NewBuilder(signer)

	claims := &Claims{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		Role:      string(user.Role),
		Name:      user.Name,
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(TokenValidity),
	}

	token, err := builder.Build(claims)
	if err != nil {
		log.Println(err)
		return "", err
	}

	return token.String(), nil
}

func VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	var claims Claims
	err = jwt.ParseClaims(token.Bytes(), verifier, &claims)
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	if time.Now().After(claims.ExpiresAt) {
		return nil, errors.ErrUnauthorized
	}

	return &claims, nil
}
