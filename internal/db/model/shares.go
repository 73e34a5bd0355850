package model

const ShareCollection = "shares"

// TotalSupplyId is the reserved owner id under which the total share supply
// is tracked.
const TotalSupplyId = "_total"

type ShareDocument struct {
	Owner   string `bson:"_id"`
	Balance uint64 `bson:"balance"`
}
