package core

import (
	"context"

	"github.com/holiman/uint256"
)

// event types, also used as bus topics
const (
	EventAssetCreated     = "asset_created"
	EventTransfer         = "transfer"
	EventApproval         = "approval"
	EventReserve          = "reserve"
	EventUnReserve        = "unreserve"
	EventPriceSet         = "price_set"
	EventCollateralCreate = "collateral_create"
	EventCollateralHot    = "collateral_hot"
	EventCollateralRemove = "collateral_remove"
	EventCreateBorrow     = "create_borrow"
	EventCancelBorrow     = "cancel_borrow"
	EventCreateSupply     = "create_supply"
	EventCancelSupply     = "cancel_supply"
)

// EventTypes every event type the core emits
var EventTypes = []string{
	EventAssetCreated,
	EventTransfer,
	EventApproval,
	EventReserve,
	EventUnReserve,
	EventPriceSet,
	EventCollateralCreate,
	EventCollateralHot,
	EventCollateralRemove,
	EventCreateBorrow,
	EventCancelBorrow,
	EventCreateSupply,
	EventCancelSupply,
}

// Event domain event
type Event interface {
	EventType() string
}

// EventSink delivers committed events to observers, fire and forget
type EventSink interface {
	Publish(ctx context.Context, events ...Event)
}

type (
	AssetCreatedEvent struct {
		Asset       AssetID      `json:"asset"`
		Owner       string       `json:"owner"`
		Name        string       `json:"name"`
		Ticker      string       `json:"ticker"`
		TotalSupply *uint256.Int `json:"total_supply"`
	}

	TransferEvent struct {
		Asset AssetID      `json:"asset"`
		From  string       `json:"from"`
		To    string       `json:"to"`
		Value *uint256.Int `json:"value"`
	}

	ApprovalEvent struct {
		Asset   AssetID      `json:"asset"`
		Owner   string       `json:"owner"`
		Spender string       `json:"spender"`
		Value   *uint256.Int `json:"value"`
	}

	ReserveEvent struct {
		Asset   AssetID      `json:"asset"`
		Account string       `json:"account"`
		Value   *uint256.Int `json:"value"`
	}

	UnReserveEvent struct {
		Asset   AssetID      `json:"asset"`
		Account string       `json:"account"`
		Value   *uint256.Int `json:"value"`
	}

	PriceSetEvent struct {
		Asset AssetID      `json:"asset"`
		Price *uint256.Int `json:"price"`
	}

	CollateralCreateEvent struct {
		Account string       `json:"account"`
		Amount  *uint256.Int `json:"amount"`
		Asset   AssetID      `json:"asset"`
		OrderID Hash         `json:"order_id"`
		Hash    Hash         `json:"hash"`
	}

	CollateralHotEvent struct {
		Account string `json:"account"`
		Hash    Hash   `json:"hash"`
	}

	CollateralRemoveEvent struct {
		Account string           `json:"account"`
		Hash    Hash             `json:"hash"`
		Status  CollateralStatus `json:"status"`
	}

	CreateBorrowEvent struct {
		ID       Hash         `json:"id"`
		Owner    string       `json:"owner"`
		BTotal   *uint256.Int `json:"btotal"`
		BToken   AssetID      `json:"btoken_id"`
		Duration uint64       `json:"duration"`
		STotal   *uint256.Int `json:"stotal"`
		SToken   AssetID      `json:"stoken_id"`
		Interest uint32       `json:"interest"`
	}

	CancelBorrowEvent struct {
		Owner string `json:"owner"`
		ID    Hash   `json:"id"`
	}

	CreateSupplyEvent struct {
		ID     Hash         `json:"id"`
		Owner  string       `json:"owner"`
		Total  *uint256.Int `json:"total"`
		SToken AssetID      `json:"stoken"`
	}

	CancelSupplyEvent struct {
		Owner string `json:"owner"`
		ID    Hash   `json:"id"`
	}
)

func (AssetCreatedEvent) EventType() string     { return EventAssetCreated }
func (TransferEvent) EventType() string         { return EventTransfer }
func (ApprovalEvent) EventType() string         { return EventApproval }
func (ReserveEvent) EventType() string          { return EventReserve }
func (UnReserveEvent) EventType() string        { return EventUnReserve }
func (PriceSetEvent) EventType() string         { return EventPriceSet }
func (CollateralCreateEvent) EventType() string { return EventCollateralCreate }
func (CollateralHotEvent) EventType() string    { return EventCollateralHot }
func (CollateralRemoveEvent) EventType() string { return EventCollateralRemove }
func (CreateBorrowEvent) EventType() string     { return EventCreateBorrow }
func (CancelBorrowEvent) EventType() string     { return EventCancelBorrow }
func (CreateSupplyEvent) EventType() string     { return EventCreateSupply }
func (CancelSupplyEvent) EventType() string     { return EventCancelSupply }
