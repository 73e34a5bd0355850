package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextOperationId reserves and returns the next value of the global
// operation id sequence.
func (db *Database) NextOperationId(ctx context.Context) (uint64, error) {
	client := db.Client.Database(db.DbName).Collection(model.CounterCollection)

	filter := bson.M{"_id": model.OperationCounterId}
	update := bson.M{"$inc": bson.M{"value": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter model.CounterDocument
	err := client.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// InsertOperation appends a new operation to the log. The unique
// (owner, user_nonce) index catches two inits racing for the same slot.
func (db *Database) InsertOperation(ctx context.Context, doc *model.OperationDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.OperationCollection)

	_, err := client.InsertOne(ctx, doc)
	if err != nil {
		return duplicateOperationError(doc.Owner, err)
	}
	return nil
}

// InsertOperationBurningShares appends a withdraw operation and burns the
// shares it locks in one transaction. A failed burn leaves no opened
// operation behind.
func (db *Database) InsertOperationBurningShares(ctx context.Context, doc *model.OperationDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.OperationCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := client.InsertOne(sessCtx, doc); err != nil {
			return nil, duplicateOperationError(doc.Owner, err)
		}
		if err := db.debitShares(sessCtx, doc.Owner, doc.Amount); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

// FinishOperationMintingShares flips the operation to finished and credits
// the minted shares in one transaction, so a finished deposit can never be
// left without its shares. Returns a NotFoundError if the operation does not
// exist or is already finished.
func (db *Database) FinishOperationMintingShares(ctx context.Context, id uint64, owner string, shares uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.OperationCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"_id": id, "finished": false}
		update := bson.M{"$set": bson.M{"finished": true}}
		result, err := client.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", id),
				Message: "no unfinished operation found",
			}
		}
		if err := db.creditShares(sessCtx, owner, shares); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err := TxWithRetries(ctx, db.txClient(), transactionWork)
	return err
}

func duplicateOperationError(owner string, err error) error {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, e := range writeErr.WriteErrors {
			if mongo.IsDuplicateKeyError(e) {
				return &DuplicateKeyError{
					Key:     owner,
					Message: "operation already exists for this owner and nonce",
				}
			}
		}
	}
	return err
}

func (db *Database) FindOperationById(ctx context.Context, id uint64) (*model.OperationDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.OperationCollection)

	var doc model.OperationDocument
	err := client.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", id),
				Message: "operation not found",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// FindLastOperationByOwner returns the owner's most recent operation, or a
// NotFoundError if the owner has never initiated one.
func (db *Database) FindLastOperationByOwner(ctx context.Context, owner string) (*model.OperationDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.OperationCollection)

	opts := options.FindOne().SetSort(bson.M{"user_nonce": -1})
	var doc model.OperationDocument
	err := client.FindOne(ctx, bson.M{"owner": owner}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &NotFoundError{
				Key:     owner,
				Message: "no operations found for owner",
			}
		}
		return nil, err
	}
	return &doc, nil
}

// MarkOperationFinished flips finished to true. Returns a NotFoundError if
// the operation does not exist or is already finished; callers distinguish
// the two by fetching the document.
func (db *Database) MarkOperationFinished(ctx context.Context, id uint64) error {
	client := db.Client.Database(db.DbName).Collection(model.OperationCollection)

	filter := bson.M{"_id": id, "finished": false}
	update := bson.M{"$set": bson.M{"finished": true}}
	result, err := client.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     fmt.Sprintf("%d", id),
			Message: "no unfinished operation found",
		}
	}
	return nil
}
