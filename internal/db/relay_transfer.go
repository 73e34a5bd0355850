package db

import (
	"context"
	"errors"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *Database) SaveRelayTransfer(ctx context.Context, doc *model.RelayTransferDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.RelayTransferCollection)

	_, err := client.InsertOne(ctx, doc)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     doc.TransferId,
						Message: "relay transfer already recorded",
					}
				}
			}
		}
		return err
	}
	return nil
}

// MarkRelayTransferDelivered tolerates duplicated delivery events; a second
// delivery of the same transfer matches nothing and is reported as not
// found, which handlers treat as already processed.
func (db *Database) MarkRelayTransferDelivered(ctx context.Context, transferId string) error {
	client := db.Client.Database(db.DbName).Collection(model.RelayTransferCollection)

	filter := bson.M{"_id": transferId, "state": model.RelayTransferSent}
	update := bson.M{"$set": bson.M{"state": model.RelayTransferDelivered}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     transferId,
			Message: "relay transfer not found in sent state",
		}
	}
	return nil
}
