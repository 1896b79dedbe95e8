package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-redis/redis"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetClientWithHTTPConfig(host, port string, httpClient *http.Client) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s/", host, port)
	optionsClient := options.Client().ApplyURI(uri).SetHTTPClient(httpClient)
	return mongo.Connect(context.TODO(), optionsClient)
}

func GetRedisClient(host, port string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})

	if err := client.Ping().Err(); err != nil {
		return nil, err
	}

	return client, nil
}

func GetNeo4JDriver(host, port, user, pass string) (neo4j.DriverWithContext, error) {
	uri := fmt.Sprintf("bolt://%s:%s", host, port)
	auth := neo4j.BasicAuth(user, pass, "")
	return neo4j.NewDriverWithContext(uri, auth)
}
