package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storepulse/insight-api/internal/core/domain"
)

const accountsCollection = "accounts"

type AccountRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db, coll: db.Collection(accountsCollection)}
}

type mongoAccount struct {
	ID            int64  `bson:"_id"`
	Email         string `bson:"email,omitempty"`
	Name          string `bson:"name"`
	PasswordHash  string `bson:"password_hash,omitempty"`
	ProfileImgURL string `bson:"profile_img_url,omitempty"`
	Role          string `bson:"role"`
	Provider      string `bson:"provider,omitempty"`
	SocialID      string `bson:"social_id,omitempty"`
	CreatedAt     int64  `bson:"created_at"`
	UpdatedAt     int64  `bson:"updated_at"`
}

// EnsureIndexes creates the unique indexes creation races depend on:
// email for local signups, (provider, social_id) for federated links.
// Both are partial so accounts of the other credential style don't collide
// on empty values.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "provider", Value: 1}, {Key: "social_id", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.M{"social_id": bson.M{"$type": "string"}}),
		},
	})
	if err != nil {
		return fmt.Errorf("account indexes: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *AccountRepository) FindBySocialID(ctx context.Context, provider, socialID string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"provider": provider, "social_id": socialID})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toAccount(&ma), nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	return r.insert(ctx, account)
}

// CreateSocial inserts a federated account. The unique (provider,
// social_id) index turns concurrent callback races into
// domain.ErrUserDuplicate, which the identity service resolves by
// re-finding.
func (r *AccountRepository) CreateSocial(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	return r.insert(ctx, account)
}

func (r *AccountRepository) insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	id, err := nextID(ctx, r.db, accountsCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoAccount{
		ID:            id,
		Email:         account.Email,
		Name:          account.Name,
		PasswordHash:  account.PasswordHash,
		ProfileImgURL: account.ProfileImgURL,
		Role:          account.Role,
		Provider:      account.Provider,
		SocialID:      account.SocialID,
		CreatedAt:     now.Unix(),
		UpdatedAt:     now.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserDuplicate
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return toAccount(&doc), nil
}

func (r *AccountRepository) UpdateName(ctx context.Context, id int64, name string) error {
	return r.update(ctx, id, bson.M{"name": name})
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, id, bson.M{"password_hash": passwordHash})
}

func (r *AccountRepository) update(ctx context.Context, id int64, fields bson.M) error {
	fields["updated_at"] = time.Now().UTC().Unix()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toAccount(ma *mongoAccount) *domain.Account {
	return &domain.Account{
		ID:            ma.ID,
		Email:         ma.Email,
		Name:          ma.Name,
		PasswordHash:  ma.PasswordHash,
		ProfileImgURL: ma.ProfileImgURL,
		Role:          ma.Role,
		Provider:      ma.Provider,
		SocialID:      ma.SocialID,
		CreatedAt:     unixToTime(ma.CreatedAt),
		UpdatedAt:     unixToTime(ma.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
