package repositories_mongo

import (
	"context"
	"testing"
	"time"

	"github.com/drujensen/taskapi/internal/domain/entities"
	"github.com/drujensen/taskapi/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

const ns = "test.tasks"

type staticSource struct {
	coll *mongo.Collection
}

func (s staticSource) Collection(string) (*mongo.Collection, error) {
	return s.coll, nil
}

type disconnectedSource struct{}

func (disconnectedSource) Collection(string) (*mongo.Collection, error) {
	return nil, errs.StoreErrorf("database not connected")
}

func newRepo(mt *mtest.T) *MongoTaskRepository {
	return NewMongoTaskRepository(staticSource{coll: mt.Coll}, "tasks", zap.NewNop())
}

func taskDoc(id primitive.ObjectID, action string) bson.D {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "action", Value: action},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
	}
}

func TestMongoTaskRepository_CreateTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		task := entities.NewTask("buy milk")
		err := newRepo(mt).CreateTask(context.Background(), task)

		require.NoError(mt, err)
		assert.Len(mt, task.ID, 24)
		_, err = primitive.ObjectIDFromHex(task.ID)
		assert.NoError(mt, err)
	})

	mt.Run("write failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		task := entities.NewTask("buy milk")
		err := newRepo(mt).CreateTask(context.Background(), task)

		assert.IsType(mt, &errs.StoreError{}, err)
		assert.Empty(mt, task.ID)
	})
}

func TestMongoTaskRepository_ListTasks(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns documents in order", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			taskDoc(first, "buy milk"),
			taskDoc(second, "walk dog"),
		))

		tasks, err := newRepo(mt).ListTasks(context.Background())

		require.NoError(mt, err)
		require.Len(mt, tasks, 2)
		assert.Equal(mt, first.Hex(), tasks[0].ID)
		assert.Equal(mt, "buy milk", tasks[0].Action)
		assert.Equal(mt, second.Hex(), tasks[1].ID)
		assert.Equal(mt, "walk dog", tasks[1].Action)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		tasks, err := newRepo(mt).ListTasks(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, tasks)
		assert.Empty(mt, tasks)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		tasks, err := newRepo(mt).ListTasks(context.Background())

		assert.IsType(mt, &errs.StoreError{}, err)
		assert.Nil(mt, tasks)
	})
}

func TestMongoTaskRepository_GetTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, taskDoc(id, "buy milk")))

		task, err := newRepo(mt).GetTask(context.Background(), id.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), task.ID)
		assert.Equal(mt, "buy milk", task.Action)
		assert.False(mt, task.CreatedAt.IsZero())
	})

	mt.Run("never created", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		task, err := newRepo(mt).GetTask(context.Background(), primitive.NewObjectID().Hex())

		assert.IsType(mt, &errs.NotFoundError{}, err)
		assert.Nil(mt, task)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		task, err := newRepo(mt).GetTask(context.Background(), "not-an-object-id")

		assert.IsType(mt, &errs.StoreError{}, err)
		assert.Nil(mt, task)
	})
}

func TestMongoTaskRepository_UpdateTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		task := &entities.Task{ID: primitive.NewObjectID().Hex(), Action: "b", UpdatedAt: time.Now()}
		err := newRepo(mt).UpdateTask(context.Background(), task)

		assert.NoError(mt, err)
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		task := &entities.Task{ID: primitive.NewObjectID().Hex(), Action: "b"}
		err := newRepo(mt).UpdateTask(context.Background(), task)

		assert.IsType(mt, &errs.NotFoundError{}, err)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		err := newRepo(mt).UpdateTask(context.Background(), &entities.Task{ID: "xyz", Action: "b"})

		assert.IsType(mt, &errs.StoreError{}, err)
	})
}

func TestMongoTaskRepository_DeleteTask(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns removed document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: taskDoc(id, "buy milk")},
		))

		task, err := newRepo(mt).DeleteTask(context.Background(), id.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), task.ID)
		assert.Equal(mt, "buy milk", task.Action)
	})

	mt.Run("nonexistent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: nil},
		))

		task, err := newRepo(mt).DeleteTask(context.Background(), primitive.NewObjectID().Hex())

		assert.IsType(mt, &errs.NotFoundError{}, err)
		assert.Nil(mt, task)
	})
}

func TestMongoTaskRepository_Disconnected(t *testing.T) {
	repo := NewMongoTaskRepository(disconnectedSource{}, "tasks", zap.NewNop())
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	_, err := repo.ListTasks(ctx)
	assert.IsType(t, &errs.StoreError{}, err)

	_, err = repo.GetTask(ctx, id)
	assert.IsType(t, &errs.StoreError{}, err)

	err = repo.CreateTask(ctx, entities.NewTask("a"))
	assert.IsType(t, &errs.StoreError{}, err)

	err = repo.UpdateTask(ctx, &entities.Task{ID: id, Action: "a"})
	assert.IsType(t, &errs.StoreError{}, err)

	_, err = repo.DeleteTask(ctx, id)
	assert.IsType(t, &errs.StoreError{}, err)
}
