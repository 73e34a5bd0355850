package db

import (
	"context"
	"fmt"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
	"github.com/thirdfi/fund-orchestrator/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func stakingPoolFilter(chainId uint64, asset string) bson.M {
	return bson.M{"chain_id": chainId, "asset": asset}
}

func (db *Database) FindStakingPool(ctx context.Context, chainId uint64, asset string) (*model.StakingPoolDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	var doc model.StakingPoolDocument
	err := client.FindOne(ctx, stakingPoolFilter(chainId, asset)).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d/%s", chainId, asset),
				Message: "staking pool not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// InvestStakingPool moves the buffer into the staked position. The filter
// pins the buffer to the value the caller computed shares from, so a
// concurrent deposit forces a re-read instead of silently investing a
// different amount.
func (db *Database) InvestStakingPool(ctx context.Context, chainId uint64, asset string, bufferedUsd, sharesMinted uint64, nowTs int64) error {
	client := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	filter := stakingPoolFilter(chainId, asset)
	filter["buffered_deposits"] = bufferedUsd
	filter["emergency_unbonding"] = false
	update := bson.M{
		"$set": bson.M{"buffered_deposits": uint64(0), "last_invest_ts": nowTs},
		"$inc": bson.M{"staked_shares": int64(sharesMinted)},
	}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d/%s", chainId, asset),
			Message: "staking pool changed underneath invest",
		}
	}
	return nil
}

// AddWithdrawRequest books a user's withdrawal shortfall for the next redeem
// batch. Request insert and the pool counter move together.
func (db *Database) AddWithdrawRequest(ctx context.Context, req *model.WithdrawRequestDocument) error {
	requestClient := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)
	poolClient := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := requestClient.InsertOne(sessCtx, req); err != nil {
			return nil, err
		}

		update := bson.M{
			"$inc":         bson.M{"requested_withdrawals": int64(req.AmountUsd)},
			"$setOnInsert": bson.M{"first_seq": uint64(1), "last_seq": uint64(0)},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := poolClient.UpdateOne(sessCtx, stakingPoolFilter(req.ChainId, req.Asset), update, opts); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

func (db *Database) FindWithdrawRequests(ctx context.Context, chainId uint64, asset string) ([]model.WithdrawRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)

	opts := options.Find().SetSort(bson.M{"requested_ts": 1})
	cursor, err := client.Find(ctx, stakingPoolFilter(chainId, asset), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []model.WithdrawRequestDocument
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// FindWithdrawRequestsByOwner returns the owner's not yet ticketed
// withdrawal requests across every pool.
func (db *Database) FindWithdrawRequestsByOwner(ctx context.Context, owner string) ([]model.WithdrawRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)

	opts := options.Find().SetSort(bson.M{"requested_ts": 1})
	cursor, err := client.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []model.WithdrawRequestDocument
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SaveRedeemBatch appends the batch's tickets at the queue tail, drops the
// consumed requests and rolls the requested amount over into the pending
// (ticketed) balance, all in one transaction. The last_seq filter keeps two
// concurrent redeems from minting overlapping sequence numbers.
func (db *Database) SaveRedeemBatch(
	ctx context.Context, chainId uint64, asset string,
	tickets []model.UnbondingTicketDocument, sharesRedeemed, totalUsd uint64, nowTs int64,
) error {
	ticketClient := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)
	requestClient := db.Client.Database(db.DbName).Collection(model.WithdrawRequestCollection)
	poolClient := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	if len(tickets) == 0 {
		return nil
	}
	newLastSeq := tickets[len(tickets)-1].Seq

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		docs := make([]interface{}, 0, len(tickets))
		for i := range tickets {
			docs = append(docs, tickets[i])
		}
		if _, err := ticketClient.InsertMany(sessCtx, docs); err != nil {
			return nil, err
		}

		if _, err := requestClient.DeleteMany(sessCtx, stakingPoolFilter(chainId, asset)); err != nil {
			return nil, err
		}

		filter := stakingPoolFilter(chainId, asset)
		filter["last_seq"] = tickets[0].Seq - 1
		update := bson.M{
			"$set": bson.M{"last_seq": newLastSeq, "last_redeem_ts": nowTs},
			"$inc": bson.M{
				"staked_shares":         -int64(sharesRedeemed),
				"requested_withdrawals": -int64(totalUsd),
				"pending_withdrawals":   int64(totalUsd),
			},
		}
		result, err := poolClient.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d/%s", chainId, asset),
				Message: "staking pool changed underneath redeem",
			}
		}
		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

func (db *Database) FindTicketsInRange(ctx context.Context, chainId uint64, asset string, fromSeq, toSeq uint64) ([]model.UnbondingTicketDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)

	filter := stakingPoolFilter(chainId, asset)
	filter["seq"] = bson.M{"$gte": fromSeq, "$lte": toSeq}
	opts := options.Find().SetSort(bson.M{"seq": 1})

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []model.UnbondingTicketDocument
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (db *Database) FindTicketsByOwner(ctx context.Context, owner string) ([]model.UnbondingTicketDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)

	opts := options.Find().SetSort(bson.M{"seq": 1})
	cursor, err := client.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []model.UnbondingTicketDocument
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// TransitionTicketState moves one ticket to newState if its current state is
// one of the eligible previous states.
func (db *Database) TransitionTicketState(
	ctx context.Context, chainId uint64, asset string, seq uint64,
	eligiblePreviousStates []types.TicketState, newState types.TicketState,
) error {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)

	states := make([]string, 0, len(eligiblePreviousStates))
	for _, s := range eligiblePreviousStates {
		states = append(states, s.ToString())
	}

	filter := stakingPoolFilter(chainId, asset)
	filter["seq"] = seq
	filter["state"] = bson.M{"$in": states}
	update := bson.M{"$set": bson.M{"state": newState.ToString()}}

	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d/%s/%d", chainId, asset, seq),
			Message: "ticket not found or not in an eligible state",
		}
	}
	return nil
}

// AdvanceTicketHead moves the FIFO head pointer. The filter enforces that
// the head only ever moves forward from where the caller saw it.
func (db *Database) AdvanceTicketHead(ctx context.Context, chainId uint64, asset string, fromSeq, toSeq uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	filter := stakingPoolFilter(chainId, asset)
	filter["first_seq"] = fromSeq
	update := bson.M{"$set": bson.M{"first_seq": toSeq}}

	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d/%s", chainId, asset),
			Message: "ticket head moved underneath claim",
		}
	}
	return nil
}

func (db *Database) FindTicketByClaimId(ctx context.Context, claimId string) (*model.UnbondingTicketDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)

	var doc model.UnbondingTicketDocument
	err := client.FindOne(ctx, bson.M{"claim_id": claimId}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Key: claimId, Message: "ticket not found"}
		}
		return nil, err
	}
	return &doc, nil
}

// ClaimTicket consumes a matured ticket. The claim id together with the
// matching owner is the capability; the state filter makes double claims
// impossible and keeps each payout path on tickets of its own origin.
func (db *Database) ClaimTicket(
	ctx context.Context, claimId, owner string, eligibleStates []types.TicketState,
) (*model.UnbondingTicketDocument, error) {
	ticketClient := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)
	poolClient := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	states := make([]string, 0, len(eligibleStates))
	for _, s := range eligibleStates {
		states = append(states, s.ToString())
	}

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"claim_id": claimId,
			"owner":    owner,
			"state":    bson.M{"$in": states},
		}
		update := bson.M{"$set": bson.M{"state": types.TicketClaimed.ToString()}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var ticket model.UnbondingTicketDocument
		err := ticketClient.FindOneAndUpdate(sessCtx, filter, update, opts).Decode(&ticket)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, &NotFoundError{
					Key:     claimId,
					Message: "no claimable ticket for this claim id and owner",
				}
			}
			return nil, err
		}

		poolUpdate := bson.M{"$inc": bson.M{"pending_withdrawals": -int64(ticket.ExpectedUnderlying)}}
		if _, err := poolClient.UpdateOne(sessCtx, stakingPoolFilter(ticket.ChainId, ticket.Asset), poolUpdate); err != nil {
			return nil, err
		}

		return &ticket, nil
	}

	result, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	if err != nil {
		return nil, err
	}
	return result.(*model.UnbondingTicketDocument), nil
}

// MarkPoolEmergency force-exits the staked position: every pending ticket
// becomes an emergency ticket and the staked share count drops to zero.
func (db *Database) MarkPoolEmergency(ctx context.Context, chainId uint64, asset string) error {
	ticketClient := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)
	poolClient := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	eligible := make([]string, 0)
	for _, s := range utils.QualifiedStatesToEmergency() {
		eligible = append(eligible, s.ToString())
	}

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		ticketFilter := stakingPoolFilter(chainId, asset)
		ticketFilter["state"] = bson.M{"$in": eligible}
		ticketUpdate := bson.M{"$set": bson.M{"state": types.TicketEmergency.ToString()}}
		if _, err := ticketClient.UpdateMany(sessCtx, ticketFilter, ticketUpdate); err != nil {
			return nil, err
		}

		poolUpdate := bson.M{"$set": bson.M{"emergency_unbonding": true, "staked_shares": uint64(0)}}
		result, err := poolClient.UpdateOne(sessCtx, stakingPoolFilter(chainId, asset), poolUpdate)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d/%s", chainId, asset),
				Message: "staking pool not found",
			}
		}
		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

// ClearPoolEmergency lifts the emergency flag once every emergency ticket is
// claimed.
func (db *Database) ClearPoolEmergency(ctx context.Context, chainId uint64, asset string) error {
	client := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	filter := stakingPoolFilter(chainId, asset)
	filter["emergency_unbonding"] = true
	update := bson.M{"$set": bson.M{"emergency_unbonding": false}}
	_, err := client.UpdateOne(ctx, filter, update)
	return err
}

func (db *Database) CountTicketsInStates(ctx context.Context, chainId uint64, asset string, states []types.TicketState) (int64, error) {
	client := db.Client.Database(db.DbName).Collection(model.UnbondingTicketCollection)

	stateStrings := make([]string, 0, len(states))
	for _, s := range states {
		stateStrings = append(stateStrings, s.ToString())
	}

	filter := stakingPoolFilter(chainId, asset)
	filter["state"] = bson.M{"$in": stateStrings}
	return client.CountDocuments(ctx, filter)
}
