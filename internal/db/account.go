package db

import (
	"context"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveAccount(ctx context.Context, doc *model.AccountDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.AccountCollection)

	filter := bson.M{"_id": doc.Owner}
	update := bson.M{"$set": bson.M{
		"threshold":    doc.Threshold,
		"pub_keys_hex": doc.PubKeysHex,
	}}
	_, err := client.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) FindAccountByOwner(ctx context.Context, owner string) (*model.AccountDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.AccountCollection)

	var doc model.AccountDocument
	err := client.FindOne(ctx, bson.M{"_id": owner}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{Key: owner, Message: "account not found"}
		}
		return nil, err
	}
	return &doc, nil
}
