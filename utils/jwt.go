package utils

import (
    "errors"
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// Tokens are stateless: validity is fully determined by signature and expiry.
const tokenTTL = 24 * time.Hour

func GenerateJWT(email string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "email": email,
        "exp":   time.Now().Add(tokenTTL).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseJWT validates an HS256 bearer token and returns the email claim.
// Expired tokens fail inside jwt.Parse.
func ParseJWT(tokenString string) (string, error) {
    secret := []byte(os.Getenv("JWT_SECRET"))
    if len(secret) == 0 {
        return "", errors.New("JWT_SECRET not set")
    }

    token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, errors.New("unexpected signing method")
        }
        return secret, nil
    })
    if err != nil || !token.Valid {
        return "", errors.New("invalid token")
    }

    claims, ok := token.Claims.(jwt.MapClaims)
    if !ok {
        return "", errors.New("invalid claims")
    }

    email, _ := claims["email"].(string)
    if email == "" {
        return "", errors.New("email claim missing")
    }
    return email, nil
}
