package codes

import (
	"errors"
	"strconv"

	"lendbook/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// With with specified error
func With(err error, code int) twirp.Error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}

// From classify err, core.ErrorCode values keep their own number as custom code
func From(err error) twirp.Error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	var code core.ErrorCode
	if !errors.As(err, &code) {
		return twirp.InternalErrorWith(err)
	}

	return twirp.NewError(twirpCode(code), code.Message()).
		WithMeta(CustomCodeKey, code.String())
}

func twirpCode(code core.ErrorCode) twirp.ErrorCode {
	switch code {
	case core.ErrUnauthorized:
		return twirp.Unauthenticated
	case core.ErrOperationForbidden:
		return twirp.PermissionDenied
	case core.ErrAssetNotFound,
		core.ErrBalanceNotFound,
		core.ErrAllowanceNotFound,
		core.ErrPriceNotFound,
		core.ErrCollateralNotFound,
		core.ErrOrderNotFound:
		return twirp.NotFound
	case core.ErrCollateralConflicts,
		core.ErrOrderConflicts:
		return twirp.AlreadyExists
	case core.ErrInvalidArgument,
		core.ErrInvalidAmount,
		core.ErrAccountTooLong,
		core.ErrNameTooLong,
		core.ErrTickerTooLong,
		core.ErrInvalidPrice,
		core.ErrInvalidTokens:
		return twirp.InvalidArgument
	case core.ErrUnknown:
		return twirp.Internal
	default:
		return twirp.FailedPrecondition
	}
}
