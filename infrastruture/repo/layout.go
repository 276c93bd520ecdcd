package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LayoutRepo stores saved layouts, one document per owner and name.
type LayoutRepo struct {
	collection *mongo.Collection
}

var _ i.LayoutRepo = &LayoutRepo{}

// NewLayoutRepo creates a new LayoutRepo with the given MongoDB client, database name, and collection name.
func NewLayoutRepo(client *mongo.Client, dbName, collectionName string) *LayoutRepo {
	return &LayoutRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the unique (ownerId, name) index.
func (l *LayoutRepo) EnsureIndexes(ctx context.Context) error {
	_, err := l.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts the layout or replaces the owner's layout with the same name.
func (l *LayoutRepo) Save(ctx context.Context, layout *dmn.SavedLayout) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"ownerId": layout.OwnerID, "name": layout.Name}
	opts := options.Replace().SetUpsert(true)
	if _, err := l.collection.ReplaceOne(ctx, filter, layout, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByName retrieves one of the owner's layouts.
func (l *LayoutRepo) ByName(ctx context.Context, ownerID uuid.UUID, name string) (*dmn.SavedLayout, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var layout dmn.SavedLayout
	filter := bson.M{"ownerId": ownerID, "name": name}
	if err := l.collection.FindOne(ctx, filter).Decode(&layout); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrLayoutNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &layout, nil
}

// ByOwner lists the owner's layouts sorted by name.
func (l *LayoutRepo) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.SavedLayout, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := l.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	layouts := make([]*dmn.SavedLayout, 0)
	if err := cursor.All(ctx, &layouts); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return layouts, nil
}
