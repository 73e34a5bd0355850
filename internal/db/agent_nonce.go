package db

import (
	"context"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdvanceAgentNonce accepts nonce if and only if it is exactly one ahead of
// the stored value (or 1 for a first-time caller). A rejected nonce leaves
// the stored value untouched, which is what makes every phase call
// idempotent under relayer retries.
func (db *Database) AdvanceAgentNonce(ctx context.Context, owner string, nonce uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.AgentNonceCollection)

	if nonce == 0 {
		return &StaleNonceError{Key: owner, Message: "Nonce is behind"}
	}

	if nonce == 1 {
		_, err := client.InsertOne(ctx, model.AgentNonceDocument{Owner: owner, Nonce: 1})
		if err != nil {
			return staleNonceFromInsertErr(owner, err)
		}
		return nil
	}

	filter := bson.M{"_id": owner, "nonce": nonce - 1}
	update := bson.M{"$set": bson.M{"nonce": nonce}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &StaleNonceError{Key: owner, Message: "Nonce is behind"}
	}
	return nil
}

// staleNonceFromInsertErr maps a duplicate key violation on the nonce
// document to a StaleNonceError. Any other write failure is a real error and
// must surface as one.
func staleNonceFromInsertErr(owner string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &StaleNonceError{Key: owner, Message: "Nonce is behind"}
	}
	return err
}

func (db *Database) GetAgentNonce(ctx context.Context, owner string) (uint64, error) {
	client := db.Client.Database(db.DbName).Collection(model.AgentNonceCollection)

	var doc model.AgentNonceDocument
	err := client.FindOne(ctx, bson.M{"_id": owner}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return doc.Nonce, nil
}
