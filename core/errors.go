package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001
	// ErrUnauthorized caller could not be authenticated
	ErrUnauthorized ErrorCode = 100002
	// ErrInvalidArgument invalid argument
	ErrInvalidArgument ErrorCode = 100003
	// ErrAccountTooLong account id too long
	ErrAccountTooLong ErrorCode = 100004

	// ErrAssetNotFound asset not registered
	ErrAssetNotFound ErrorCode = 100100
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrNameTooLong token name too long
	ErrNameTooLong ErrorCode = 100102
	// ErrTickerTooLong token ticker too long
	ErrTickerTooLong ErrorCode = 100103
	// ErrArithmeticOverflow checked arithmetic failed
	ErrArithmeticOverflow ErrorCode = 100104

	// ErrBalanceNotFound account does not own this token
	ErrBalanceNotFound ErrorCode = 100200
	// ErrInsufficientBalance not enough balance
	ErrInsufficientBalance ErrorCode = 100201
	// ErrInsufficientFree not enough free balance
	ErrInsufficientFree ErrorCode = 100202
	// ErrInsufficientReserved not enough reserved balance
	ErrInsufficientReserved ErrorCode = 100203
	// ErrAllowanceNotFound allowance does not exist
	ErrAllowanceNotFound ErrorCode = 100204
	// ErrInsufficientAllowance not enough allowance
	ErrInsufficientAllowance ErrorCode = 100205

	// ErrPriceNotFound price unknown
	ErrPriceNotFound ErrorCode = 100300
	// ErrInvalidPrice invalid price
	ErrInvalidPrice ErrorCode = 100301

	// ErrCollateralConflicts duplicate collateral
	ErrCollateralConflicts ErrorCode = 100400
	// ErrCollateralNotFound no collateral
	ErrCollateralNotFound ErrorCode = 100401
	// ErrCollateralStatus collateral status does not allow the transition
	ErrCollateralStatus ErrorCode = 100402
	// ErrCollateralNotFinished collateral not finished
	ErrCollateralNotFinished ErrorCode = 100403

	// ErrInsufficientCollaterals insufficient collaterals
	ErrInsufficientCollaterals ErrorCode = 100500
	// ErrOrderConflicts order id already taken
	ErrOrderConflicts ErrorCode = 100501
	// ErrOrderNotFound no order
	ErrOrderNotFound ErrorCode = 100502
	// ErrInvalidTokens empty acceptable token list
	ErrInvalidTokens ErrorCode = 100503
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:                 "unknown error",
	ErrOperationForbidden:      "operation forbidden",
	ErrUnauthorized:            "unauthorized",
	ErrInvalidArgument:         "invalid argument",
	ErrAccountTooLong:          "account id cannot exceed 128 bytes",
	ErrAssetNotFound:           "asset not found",
	ErrInvalidAmount:           "invalid amount",
	ErrNameTooLong:             "token name cannot exceed 64 bytes",
	ErrTickerTooLong:           "token ticker cannot exceed 32 bytes",
	ErrArithmeticOverflow:      "arithmetic overflow",
	ErrBalanceNotFound:         "account does not own this token",
	ErrInsufficientBalance:     "not enough balance",
	ErrInsufficientFree:        "not enough free balance",
	ErrInsufficientReserved:    "not enough reserved balance",
	ErrAllowanceNotFound:       "allowance does not exist",
	ErrInsufficientAllowance:   "not enough allowance",
	ErrPriceNotFound:           "price not found",
	ErrInvalidPrice:            "invalid price",
	ErrCollateralConflicts:     "collateral conflicts",
	ErrCollateralNotFound:      "collateral not found",
	ErrCollateralStatus:        "collateral status mismatch",
	ErrCollateralNotFinished:   "collateral not finished",
	ErrInsufficientCollaterals: "insufficient collaterals",
	ErrOrderConflicts:          "order conflicts",
	ErrOrderNotFound:           "order not found",
	ErrInvalidTokens:           "acceptable token list is empty",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

// Message human readable reason
func (e ErrorCode) Message() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return errorMessages[ErrUnknown]
}

func (e ErrorCode) Error() string {
	return e.Message()
}
