package session

import (
	"context"
	"time"

	"lendbook/core"

	"github.com/bluele/gcache"
)

const maxCacheTTL = time.Hour

type cacheSession struct {
	core.Session
	tokens gcache.Cache
}

func (s *cacheSession) Login(ctx context.Context, accessToken string) (string, error) {
	if v, err := s.tokens.Get(accessToken); err == nil {
		if account, ok := v.(string); ok {
			return account, nil
		}
	}

	account, err := s.Session.Login(ctx, accessToken)
	if err != nil {
		return "", err
	}

	_ = s.tokens.SetWithExpire(accessToken, account, s.ttl(accessToken))
	return account, nil
}

// ttl never cache a token past its own expiry
func (s *cacheSession) ttl(accessToken string) time.Duration {
	ttl := maxCacheTTL
	var claims Claims
	if _, _, err := jwtParser.ParseUnverified(accessToken, &claims); err == nil && claims.ExpiresAt != nil {
		if left := time.Until(claims.ExpiresAt.Time); left < ttl {
			ttl = left
		}
	}

	if ttl <= 0 {
		ttl = time.Second
	}

	return ttl
}
