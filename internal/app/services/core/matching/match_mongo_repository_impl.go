package matching

import (
	"context"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	matchRepositoryInstance contracts.MeetingMatchRepository
	onceMatchRepository     sync.Once
)

type matchMongoRepository struct {
	collection *mongo.Collection
}

func NewMatchMongoRepository(client *mongo.Client, dbName, collectionName string) contracts.MeetingMatchRepository {
	onceMatchRepository.Do(func() {
		matchRepositoryInstance = &matchMongoRepository{
			collection: client.Database(dbName).Collection(collectionName),
		}
	})
	return matchRepositoryInstance
}

func (r *matchMongoRepository) InsertMatches(ctx context.Context, matches []models.MeetingMatch) error {
	if len(matches) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(matches))
	for _, match := range matches {
		documents = append(documents, match)
	}
	_, err := r.collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *matchMongoRepository) ListMatches(ctx context.Context) ([]models.MeetingMatch, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "matched_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var matches []models.MeetingMatch
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return matches, nil
}
