package db

import (
	"context"
	"fmt"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SaveAdapterPeers upserts the trusted remote endpoint per chain for one
// adapter type.
func (db *Database) SaveAdapterPeers(ctx context.Context, adapterType string, chainIds []uint64, peers []string) error {
	client := db.Client.Database(db.DbName).Collection(model.AdapterPeerCollection)

	for i := range chainIds {
		filter := bson.M{"adapter_type": adapterType, "chain_id": chainIds[i]}
		update := bson.M{"$set": bson.M{"peer": peers[i]}}
		if _, err := client.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return err
		}
	}
	return nil
}

func (db *Database) FindAdapterPeer(ctx context.Context, adapterType string, chainId uint64) (*model.AdapterPeerDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.AdapterPeerCollection)

	var doc model.AdapterPeerDocument
	err := client.FindOne(ctx, bson.M{"adapter_type": adapterType, "chain_id": chainId}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%s/%d", adapterType, chainId),
				Message: "adapter peer not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}
