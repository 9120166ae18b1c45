package store

import (
	"context"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dogwalking_service/startup/config"
)

const DATABASE = "dog_walking"

// Connect builds the shared pooled client from the service config. The
// database and its collections are lazy on the server side, nothing is
// verified until the first operation runs.
func Connect(cfg *config.Config, httpClient *http.Client) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s/", cfg.DogWalkingDBHost, cfg.DogWalkingDBPort)
	clientOptions := options.Client().ApplyURI(uri).SetHTTPClient(httpClient)
	return mongo.Connect(context.TODO(), clientOptions)
}
