package core

import (
	"context"
)

// Session caller authentication
type Session interface {
	// Login return the verified account id of the token holder
	Login(ctx context.Context, accessToken string) (string, error)
}
