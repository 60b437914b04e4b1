package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "holdem-server"

// Audience is the intended JWT audience
const Audience = "holdem-players"

const generatedKeyBits = 2048

var publicKey *rsa.PublicKey
var privateKey *rsa.PrivateKey

// Claims identify a player seated in a game
type Claims struct {
	GameID string `json:"game"`
	jwtgo.RegisteredClaims
}

// LoadKeys will load the public and private keys
// this method should only be called once.
func LoadKeys(publicKeyPath, privateKeyPath string) {
	privateKey = loadPrivateKey(privateKeyPath)
	publicKey = loadPublicKey(publicKeyPath)
}

// GenerateKeys creates a key pair that only lives as long as the process
// Tokens signed with it cannot be validated after a restart.
func GenerateKeys() error {
	key, err := rsa.GenerateKey(rand.Reader, generatedKeyBits)
	if err != nil {
		return err
	}

	privateKey = key
	publicKey = &key.PublicKey
	return nil
}

// Sign will sign a JWT for the player seated in the game
func Sign(gameID, playerID string) (string, error) {
	if privateKey == nil {
		panic("LoadKeys() not called")
	}

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, Claims{
		GameID: gameID,
		RegisteredClaims: jwtgo.RegisteredClaims{
			Audience: jwtgo.ClaimStrings{Audience},
			ID:       uuid.New().String(),
			IssuedAt: jwtgo.NewNumericDate(time.Now()),
			Issuer:   Issuer,
			Subject:  playerID,
		},
	})

	return token.SignedString(privateKey)
}

// ValidPlayer will validate a signed JWT and return the game and player it was issued for
func ValidPlayer(signedString string) (gameID string, playerID string, err error) {
	if publicKey == nil {
		panic("LoadKeys() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &Claims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodRSA); !ok {
			return nil, errors.New("expected RS256 signing method")
		}

		return publicKey, nil
	})

	if err != nil {
		return "", "", err
	}

	if !token.Valid {
		logrus.Warn("token claims were not valid. did not expect to reach this code")
		return "", "", errors.New("claims were not valid")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", "", fmt.Errorf("expected jwt.Claims, got %T", token.Claims)
	}

	if !containsAudience(claims.Audience, Audience) {
		return "", "", errors.New("invalid audience")
	}

	if claims.Issuer != Issuer {
		return "", "", errors.New("invalid issuer")
	}

	if claims.GameID == "" || claims.Subject == "" {
		return "", "", errors.New("missing game or player")
	}

	return claims.GameID, claims.Subject, nil
}

func loadPublicKey(path string) *rsa.PublicKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not read file")
	}

	pem, err := jwtgo.ParseRSAPublicKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse RSA public key")
	}

	return pem
}

func loadPrivateKey(path string) *rsa.PrivateKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not read file")
	}

	pem, err := jwtgo.ParseRSAPrivateKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse RSA private key")
	}

	return pem
}

func containsAudience(audiences jwtgo.ClaimStrings, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}
	return false
}
