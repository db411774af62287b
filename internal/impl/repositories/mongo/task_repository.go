package repositories_mongo

import (
	"context"
	"time"

	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/drujensen/taskapi/internal/domain/errs"
	"github.com/drujensen/taskapi/internal/domain/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionSource hands out collection handles. *database.MongoDB satisfies
// it and reports a StoreError while the client is not yet connected.
type CollectionSource interface {
	Collection(name string) (*mongo.Collection, error)
}

// taskDocument is the stored shape of a task; the id is a native ObjectID.
type taskDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Action    string             `bson:"action"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *taskDocument) toEntity() *entities.Task {
	return &entities.Task{
		ID:        d.ID.Hex(),
		Action:    d.Action,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type MongoTaskRepository struct {
	source     CollectionSource
	collection string
	logger     *zap.Logger
}

func NewMongoTaskRepository(source CollectionSource, collection string, logger *zap.Logger) *MongoTaskRepository {
	return &MongoTaskRepository{
		source:     source,
		collection: collection,
		logger:     logger,
	}
}

func (r *MongoTaskRepository) tasks() (*mongo.Collection, error) {
	return r.source.Collection(r.collection)
}

func (r *MongoTaskRepository) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	coll, err := r.tasks()
	if err != nil {
		return nil, err
	}

	tasks := []*entities.Task{}
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errs.StoreErrorf("failed to list tasks: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc taskDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errs.StoreErrorf("failed to decode task: %v", err)
		}
		tasks = append(tasks, doc.toEntity())
	}

	if err := cursor.Err(); err != nil {
		return nil, errs.StoreErrorf("failed to list tasks: %v", err)
	}

	return tasks, nil
}

func (r *MongoTaskRepository) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.tasks()
	if err != nil {
		return nil, err
	}

	var doc taskDocument
	err = coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errs.NotFoundErrorf("task not found: %s", id)
	}
	if err != nil {
		return nil, errs.StoreErrorf("failed to get task: %v", err)
	}

	return doc.toEntity(), nil
}

func (r *MongoTaskRepository) CreateTask(ctx context.Context, task *entities.Task) error {
	coll, err := r.tasks()
	if err != nil {
		return err
	}

	doc := taskDocument{
		ID:        primitive.NewObjectID(),
		Action:    task.Action,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return errs.StoreErrorf("failed to create task: %v", err)
	}

	task.ID = doc.ID.Hex()
	r.logger.Debug("Inserted task", zap.String("task_id", task.ID))
	return nil
}

func (r *MongoTaskRepository) UpdateTask(ctx context.Context, task *entities.Task) error {
	objectID, err := parseID(task.ID)
	if err != nil {
		return err
	}
	coll, err := r.tasks()
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"action":     task.Action,
			"updated_at": task.UpdatedAt,
		},
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return errs.StoreErrorf("failed to update task: %v", err)
	}
	if result.MatchedCount == 0 {
		return errs.NotFoundErrorf("task not found: %s", task.ID)
	}

	return nil
}

func (r *MongoTaskRepository) DeleteTask(ctx context.Context, id string) (*entities.Task, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	coll, err := r.tasks()
	if err != nil {
		return nil, err
	}

	var doc taskDocument
	err = coll.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errs.NotFoundErrorf("task not found: %s", id)
	}
	if err != nil {
		return nil, errs.StoreErrorf("failed to delete task: %v", err)
	}

	return doc.toEntity(), nil
}

// parseID converts a hex identifier into an ObjectID. A malformed identifier
// is a store-level failure, mirroring a cast error in the driver.
func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.StoreErrorf("invalid task id %q: %v", id, err)
	}
	return objectID, nil
}

var _ interfaces.TaskRepository = (*MongoTaskRepository)(nil)
