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

const noticesCollection = "notices"

type NoticeRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewNoticeRepository(db *mongo.Database) *NoticeRepository {
	return &NoticeRepository{db: db, coll: db.Collection(noticesCollection)}
}

type mongoNotice struct {
	ID        int64  `bson:"_id"`
	Title     string `bson:"title"`
	Content   string `bson:"content"`
	AuthorID  int64  `bson:"author_id"`
	CreatedAt int64  `bson:"created_at"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *NoticeRepository) FindByID(ctx context.Context, id int64) (*domain.Notice, error) {
	var mn mongoNotice
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mn); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}
	return toNotice(&mn), nil
}

// FindPage returns one page, newest first. page is 1-based.
func (r *NoticeRepository) FindPage(ctx context.Context, page, size int) ([]*domain.Notice, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notices: %w", err)
	}
	defer cur.Close(ctx)

	notices := make([]*domain.Notice, 0, size)
	for cur.Next(ctx) {
		var mn mongoNotice
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode notice: %w", err)
		}
		notices = append(notices, toNotice(&mn))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notices: %w", err)
	}
	return notices, nil
}

func (r *NoticeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count notices: %w", err)
	}
	return n, nil
}

func (r *NoticeRepository) Create(ctx context.Context, notice *domain.Notice) (*domain.Notice, error) {
	id, err := nextID(ctx, r.db, noticesCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoNotice{
		ID:        id,
		Title:     notice.Title,
		Content:   notice.Content,
		AuthorID:  notice.AuthorID,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert notice: %w", err)
	}
	return toNotice(&doc), nil
}

func (r *NoticeRepository) Update(ctx context.Context, id int64, title, content string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":      title,
		"content":    content,
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoticeNotFound
	}
	return nil
}

func toNotice(mn *mongoNotice) *domain.Notice {
	return &domain.Notice{
		ID:        mn.ID,
		Title:     mn.Title,
		Content:   mn.Content,
		AuthorID:  mn.AuthorID,
		CreatedAt: unixToTime(mn.CreatedAt),
		UpdatedAt: unixToTime(mn.UpdatedAt),
	}
}
