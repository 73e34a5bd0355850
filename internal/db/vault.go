package db

import (
	"context"
	"fmt"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) FindVault(ctx context.Context, chainId uint64) (*model.VaultDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	var doc model.VaultDocument
	err := client.FindOne(ctx, bson.M{"_id": chainId}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", chainId),
				Message: "vault not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// DepositToVault credits amountUsd against the next operation nonce and
// buffers each staked token's slice into its staking pool. The nonce and
// pause checks, the poolAtNonce record and the pool buffers are one
// transaction, so a rejected or interrupted call leaves no partial state.
func (db *Database) DepositToVault(ctx context.Context, chainId, nonce, amountUsd uint64, buffered []model.BufferedDeposit) error {
	vaultClient := db.Client.Database(db.DbName).Collection(model.VaultCollection)
	nonceClient := db.Client.Database(db.DbName).Collection(model.VaultNonceCollection)
	poolClient := db.Client.Database(db.DbName).Collection(model.StakingPoolCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		vault, err := db.findOrCreateVault(sessCtx, chainId)
		if err != nil {
			return nil, err
		}

		if vault.Paused {
			return nil, &PausedError{
				Key:     fmt.Sprintf("%d", chainId),
				Message: "vault is paused",
			}
		}

		if nonce <= vault.LastNonce {
			return nil, &StaleNonceError{
				Key:     fmt.Sprintf("%d/%d", chainId, nonce),
				Message: "Nonce is behind",
			}
		}

		update := bson.M{
			"$set": bson.M{"last_nonce": nonce},
			"$inc": bson.M{"pool_usd": int64(amountUsd)},
		}
		if _, err := vaultClient.UpdateOne(sessCtx, bson.M{"_id": chainId}, update); err != nil {
			return nil, err
		}

		record := model.VaultNonceDocument{
			ChainId:     chainId,
			Nonce:       nonce,
			PoolBefore:  vault.PoolUsd,
			AmountMoved: amountUsd,
		}
		if _, err := nonceClient.InsertOne(sessCtx, record); err != nil {
			return nil, err
		}

		for _, dep := range buffered {
			poolUpdate := bson.M{
				"$inc":         bson.M{"buffered_deposits": int64(dep.AmountUsd)},
				"$setOnInsert": bson.M{"first_seq": uint64(1), "last_seq": uint64(0)},
			}
			opts := options.Update().SetUpsert(true)
			if _, err := poolClient.UpdateOne(sessCtx, stakingPoolFilter(chainId, dep.Asset), poolUpdate, opts); err != nil {
				return nil, err
			}
		}

		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

// WithdrawFromVault releases releasedUsd from the pool and books pendingUsd
// as a claim to be settled once staking unbonds. Withdraws are allowed while
// paused; only the nonce discipline applies.
func (db *Database) WithdrawFromVault(ctx context.Context, chainId, nonce, releasedUsd, pendingUsd uint64) error {
	vaultClient := db.Client.Database(db.DbName).Collection(model.VaultCollection)
	nonceClient := db.Client.Database(db.DbName).Collection(model.VaultNonceCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		vault, err := db.findOrCreateVault(sessCtx, chainId)
		if err != nil {
			return nil, err
		}

		if nonce <= vault.LastNonce {
			return nil, &StaleNonceError{
				Key:     fmt.Sprintf("%d/%d", chainId, nonce),
				Message: "Nonce is behind",
			}
		}

		if releasedUsd > vault.PoolUsd {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", chainId),
				Message: "insufficient pool value",
			}
		}

		update := bson.M{
			"$set": bson.M{"last_nonce": nonce},
			"$inc": bson.M{
				"pool_usd":           -int64(releasedUsd),
				"pending_claims_usd": int64(pendingUsd),
			},
		}
		if _, err := vaultClient.UpdateOne(sessCtx, bson.M{"_id": chainId}, update); err != nil {
			return nil, err
		}

		record := model.VaultNonceDocument{
			ChainId:     chainId,
			Nonce:       nonce,
			PoolBefore:  vault.PoolUsd,
			AmountMoved: releasedUsd + pendingUsd,
		}
		if _, err := nonceClient.InsertOne(sessCtx, record); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

func (db *Database) findOrCreateVault(sessCtx mongo.SessionContext, chainId uint64) (*model.VaultDocument, error) {
	vaultClient := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	var vault model.VaultDocument
	err := vaultClient.FindOne(sessCtx, bson.M{"_id": chainId}).Decode(&vault)
	if err == mongo.ErrNoDocuments {
		vault = model.VaultDocument{ChainId: chainId}
		if _, err := vaultClient.InsertOne(sessCtx, vault); err != nil {
			return nil, err
		}
		return &vault, nil
	}
	if err != nil {
		return nil, err
	}
	return &vault, nil
}

// FindVaultNonce returns the poolAtNonce record of an accepted nonce.
func (db *Database) FindVaultNonce(ctx context.Context, chainId, nonce uint64) (*model.VaultNonceDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.VaultNonceCollection)

	var doc model.VaultNonceDocument
	err := client.FindOne(ctx, bson.M{"chain_id": chainId, "nonce": nonce}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d/%d", chainId, nonce),
				Message: "vault nonce not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// PauseVaultForEmergency flips the vault into the paused state and moves the
// non-liquid staked value into the tracked emergency unbonding balance.
func (db *Database) PauseVaultForEmergency(ctx context.Context, chainId, stakedUsd uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	filter := bson.M{"_id": chainId, "paused": false}
	update := bson.M{
		"$set": bson.M{"paused": true},
		"$inc": bson.M{
			"pool_usd":                -int64(stakedUsd),
			"emergency_unbonding_usd": int64(stakedUsd),
		},
	}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &PausedError{
			Key:     fmt.Sprintf("%d", chainId),
			Message: "vault is already paused",
		}
	}
	return nil
}

// ReinvestVault clears the paused flag and installs the new composition. The
// filter refuses the update while emergency unbonding is still draining.
func (db *Database) ReinvestVault(ctx context.Context, chainId uint64, composition []model.CompositionEntry) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	filter := bson.M{"_id": chainId, "paused": true, "emergency_unbonding_usd": uint64(0)}
	update := bson.M{"$set": bson.M{"paused": false, "composition": composition}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", chainId),
			Message: "vault not paused or emergency unbonding not finished",
		}
	}
	return nil
}

// ReleaseEmergencyFunds moves released unbonded value back into the liquid
// pool.
func (db *Database) ReleaseEmergencyFunds(ctx context.Context, chainId, amountUsd uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	filter := bson.M{"_id": chainId, "emergency_unbonding_usd": bson.M{"$gte": amountUsd}}
	update := bson.M{"$inc": bson.M{
		"emergency_unbonding_usd": -int64(amountUsd),
		"pool_usd":                int64(amountUsd),
	}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", chainId),
			Message: "emergency unbonding balance too low",
		}
	}
	return nil
}

// PayEmergencyClaim pays a matured emergency ticket out of the tracked
// emergency unbonding balance. The value leaves the fund, so the liquid pool
// is not touched.
func (db *Database) PayEmergencyClaim(ctx context.Context, chainId, amountUsd uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	filter := bson.M{"_id": chainId, "emergency_unbonding_usd": bson.M{"$gte": amountUsd}}
	update := bson.M{"$inc": bson.M{"emergency_unbonding_usd": -int64(amountUsd)}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", chainId),
			Message: "emergency unbonding balance too low",
		}
	}
	return nil
}

// PayPendingClaim settles a matured pending claim out of the pool.
func (db *Database) PayPendingClaim(ctx context.Context, chainId, amountUsd uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	filter := bson.M{
		"_id":                chainId,
		"pending_claims_usd": bson.M{"$gte": amountUsd},
		"pool_usd":           bson.M{"$gte": amountUsd},
	}
	update := bson.M{"$inc": bson.M{
		"pending_claims_usd": -int64(amountUsd),
		"pool_usd":           -int64(amountUsd),
	}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", chainId),
			Message: "pending claim exceeds tracked balance",
		}
	}
	return nil
}

// IncVaultPool credits unbonded value back into the liquid pool.
func (db *Database) IncVaultPool(ctx context.Context, chainId, amountUsd uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	_, err := client.UpdateOne(
		ctx,
		bson.M{"_id": chainId},
		bson.M{"$inc": bson.M{"pool_usd": int64(amountUsd)}},
	)
	return err
}

// SetVaultComposition replaces the per-ledger composition used by rebalance.
func (db *Database) SetVaultComposition(ctx context.Context, chainId uint64, composition []model.CompositionEntry) error {
	client := db.Client.Database(db.DbName).Collection(model.VaultCollection)

	result, err := client.UpdateOne(
		ctx,
		bson.M{"_id": chainId},
		bson.M{"$set": bson.M{"composition": composition}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", chainId),
			Message: "vault not found",
		}
	}
	return nil
}
