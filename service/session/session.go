package session

import (
	"context"
	"errors"
	"time"

	"lendbook/core"

	"github.com/asaskevich/govalidator"
	"github.com/bluele/gcache"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

var (
	errInvalidIssuer = errors.New("invalid issuer")
	jwtParser        = jwt.NewParser()
)

// Claims lendbook access token claims, the subject is the account id
type Claims struct {
	jwt.RegisteredClaims
}

// New new session
func New(cfg core.SessionConfig) core.Session {
	var s core.Session = &session{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		sf:     &singleflight.Group{},
	}

	if cfg.CacheCapacity > 0 {
		s = &cacheSession{
			Session: s,
			tokens:  gcache.New(cfg.CacheCapacity).LRU().Build(),
		}
	}

	return s
}

type session struct {
	secret []byte
	issuer string
	sf     *singleflight.Group
}

func (s *session) parse(accessToken string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if s.issuer != "" && !govalidator.IsIn(claims.Issuer, s.issuer) {
		return nil, errInvalidIssuer
	}

	if claims.Subject == "" {
		return nil, core.ErrUnauthorized
	}

	return &claims, nil
}

func (s *session) Login(ctx context.Context, accessToken string) (string, error) {
	account, err, _ := s.sf.Do(accessToken, func() (interface{}, error) {
		claims, err := s.parse(accessToken)
		if err != nil {
			return nil, err
		}

		return claims.Subject, nil
	})

	if err != nil {
		return "", core.ErrUnauthorized
	}

	return account.(string), nil
}

// IssueToken sign an access token for account, valid for ttl
func IssueToken(cfg core.SessionConfig, account string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   account,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
