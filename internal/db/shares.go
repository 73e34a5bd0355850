package db

import (
	"context"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) GetShareBalance(ctx context.Context, owner string) (uint64, error) {
	client := db.Client.Database(db.DbName).Collection(model.ShareCollection)

	var doc model.ShareDocument
	err := client.FindOne(ctx, bson.M{"_id": owner}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return doc.Balance, nil
}

func (db *Database) GetTotalShareSupply(ctx context.Context) (uint64, error) {
	return db.GetShareBalance(ctx, model.TotalSupplyId)
}

// creditShares credits the owner and the total supply inside the caller's
// transaction. Shares are only ever minted together with the operation update
// that justifies them.
func (db *Database) creditShares(sessCtx mongo.SessionContext, owner string, amount uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.ShareCollection)

	upsert := options.Update().SetUpsert(true)
	update := bson.M{"$inc": bson.M{"balance": int64(amount)}}

	if _, err := client.UpdateOne(sessCtx, bson.M{"_id": owner}, update, upsert); err != nil {
		return err
	}
	_, err := client.UpdateOne(sessCtx, bson.M{"_id": model.TotalSupplyId}, update, upsert)
	return err
}

// debitShares debits the owner and the total supply inside the caller's
// transaction. The balance filters guarantee neither side can go negative.
func (db *Database) debitShares(sessCtx mongo.SessionContext, owner string, amount uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.ShareCollection)

	update := bson.M{"$inc": bson.M{"balance": -int64(amount)}}

	result, err := client.UpdateOne(
		sessCtx,
		bson.M{"_id": owner, "balance": bson.M{"$gte": amount}},
		update,
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     owner,
			Message: "share balance too low",
		}
	}

	result, err = client.UpdateOne(
		sessCtx,
		bson.M{"_id": model.TotalSupplyId, "balance": bson.M{"$gte": amount}},
		update,
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.TotalSupplyId,
			Message: "total supply too low",
		}
	}
	return nil
}
