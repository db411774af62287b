package database

import (
	"context"
	"sync"
	"time"

	"github.com/drujensen/taskapi/internal/domain/errs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// MongoDB holds the MongoDB client and database handle.
// It is created once at startup and shared by every repository. The client is
// established in the background so the server can accept requests before the
// database answers; until then Collection reports a StoreError.
type MongoDB struct {
	uri    string
	dbName string
	logger *zap.Logger

	mu       sync.RWMutex
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoDB creates an unconnected handle for the given URI and database name.
func NewMongoDB(uri string, dbName string, logger *zap.Logger) *MongoDB {
	return &MongoDB{
		uri:    uri,
		dbName: dbName,
		logger: logger,
	}
}

// ConnectAsync starts Connect in its own goroutine. The returned channel is
// closed once the attempt has finished, successfully or not.
func (m *MongoDB) ConnectAsync() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		_ = m.Connect(ctx)
	}()
	return done
}

// Connect creates the client and pings the server.
//
// A failed ping is logged but the client is kept: the driver keeps monitoring
// the deployment and operations succeed once the server becomes reachable.
func (m *MongoDB) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		m.logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return errs.StoreErrorf("failed to connect to MongoDB: %v", err)
	}

	m.mu.Lock()
	m.client = client
	m.database = client.Database(m.dbName)
	m.mu.Unlock()

	if err := client.Ping(ctx, nil); err != nil {
		m.logger.Error("Failed to ping MongoDB", zap.Error(err), zap.String("database", m.dbName))
		return errs.StoreErrorf("failed to ping MongoDB: %v", err)
	}

	m.logger.Info("Database connected successfully", zap.String("database", m.dbName))
	return nil
}

// Collection returns a handle to the specified collection in the database.
func (m *MongoDB) Collection(name string) (*mongo.Collection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.database == nil {
		return nil, errs.StoreErrorf("database not connected")
	}
	return m.database.Collection(name), nil
}

// Disconnect closes the MongoDB client connection.
// It should be called when the application is shutting down to release resources.
func (m *MongoDB) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.database = nil
	m.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
