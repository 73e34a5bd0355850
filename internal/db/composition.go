package db

import (
	"context"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) GetComposition(ctx context.Context) (*model.CompositionDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.CompositionCollection)

	var doc model.CompositionDocument
	err := client.FindOne(ctx, bson.M{"_id": model.FundCompositionId}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     model.FundCompositionId,
				Message: "composition not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// SaveComposition replaces the whole target table. Validation of the
// percentage sum happens in the service before this write, so the document
// never holds a table that does not sum to the fixed denominator.
func (db *Database) SaveComposition(ctx context.Context, entries []model.TargetCompositionEntry) error {
	client := db.Client.Database(db.DbName).Collection(model.CompositionCollection)

	filter := bson.M{"_id": model.FundCompositionId}
	update := bson.M{"$set": bson.M{"entries": entries}}
	_, err := client.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
