package database

import (
	"context"
	"testing"
	"time"

	"github.com/drujensen/taskapi/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMongoDB_CollectionBeforeConnect(t *testing.T) {
	db := NewMongoDB("mongodb://localhost:27017", "test", zap.NewNop())

	coll, err := db.Collection("tasks")

	assert.Nil(t, coll)
	assert.IsType(t, &errs.StoreError{}, err)
}

func TestMongoDB_ConnectInvalidURI(t *testing.T) {
	db := NewMongoDB("", "test", zap.NewNop())

	select {
	case <-db.ConnectAsync():
	case <-time.After(5 * time.Second):
		t.Fatal("connect did not finish")
	}

	_, err := db.Collection("tasks")
	assert.IsType(t, &errs.StoreError{}, err)
	assert.NoError(t, db.Disconnect(context.Background()))
}

func TestMongoDB_UnreachableServerKeepsClient(t *testing.T) {
	db := NewMongoDB("mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200", "test", zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := db.Connect(ctx)
	assert.IsType(t, &errs.StoreError{}, err)

	coll, err := db.Collection("tasks")
	require.NoError(t, err)
	assert.Equal(t, "tasks", coll.Name())
	assert.Equal(t, "test", coll.Database().Name())

	assert.NoError(t, db.Disconnect(context.Background()))
	_, err = db.Collection("tasks")
	assert.Error(t, err)
}
