package domain

import "github.com/shopspring/decimal"

type RebalanceActionType string

const (
	RebalanceActionType_Buy      RebalanceActionType = "buy"
	RebalanceActionType_Sell     RebalanceActionType = "sell"
	RebalanceActionType_NoAction RebalanceActionType = "noAction"
)

// RebalanceAction is a proposed adjustment that brings one category back
// to its target allocation. Adjustment is signed: positive means buy.
type RebalanceAction struct {
	CategoryName   string
	CurrentValue   decimal.Decimal
	CurrentPercent decimal.Decimal
	TargetPercent  decimal.Decimal
	TargetValue    decimal.Decimal
	Adjustment     decimal.Decimal
	Action         RebalanceActionType
}

// RebalanceMove is a human-readable "move X from A to B" pairing derived
// from sell and buy actions.
type RebalanceMove struct {
	FromCategory string
	ToCategory   string
	Amount       decimal.Decimal
}
