package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storeLinksCollection = "store_links"

// StoreLinkRepository persists which account owns which store. Store data
// itself lives in the analytics service; only the ownership edge is local.
type StoreLinkRepository struct {
	coll *mongo.Collection
}

func NewStoreLinkRepository(db *mongo.Database) *StoreLinkRepository {
	return &StoreLinkRepository{coll: db.Collection(storeLinksCollection)}
}

type storeLink struct {
	StoreID   int64 `bson:"_id"`
	AccountID int64 `bson:"account_id"`
}

func (r *StoreLinkRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("store link indexes: %w", err)
	}
	return nil
}

func (r *StoreLinkRepository) StoreIDsByAccount(ctx context.Context, accountID int64) ([]int64, error) {
	cur, err := r.coll.Find(ctx, bson.M{"account_id": accountID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find store links: %w", err)
	}
	defer cur.Close(ctx)

	var ids []int64
	for cur.Next(ctx) {
		var link storeLink
		if err := cur.Decode(&link); err != nil {
			return nil, fmt.Errorf("decode store link: %w", err)
		}
		ids = append(ids, link.StoreID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate store links: %w", err)
	}
	return ids, nil
}

func (r *StoreLinkRepository) IsOwner(ctx context.Context, storeID, accountID int64) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": storeID, "account_id": accountID})
	if err != nil {
		return false, fmt.Errorf("check store owner: %w", err)
	}
	return n > 0, nil
}

// Link records ownership after a successful upstream registration. Upsert
// keeps a replayed registration response idempotent.
func (r *StoreLinkRepository) Link(ctx context.Context, storeID, accountID int64) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": storeID},
		bson.M{"$set": bson.M{"account_id": accountID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("link store: %w", err)
	}
	return nil
}

func (r *StoreLinkRepository) Unlink(ctx context.Context, storeID int64) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": storeID}); err != nil {
		return fmt.Errorf("unlink store: %w", err)
	}
	return nil
}
