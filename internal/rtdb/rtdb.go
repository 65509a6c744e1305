// Package rtdb writes to a Firebase Realtime Database.
package rtdb

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// DefaultURL is the Realtime Database the CI reports are published to.
const DefaultURL = "https://magma-ci-default-rtdb.firebaseio.com/"

type Client struct {
	db *db.Client
}

// Open initializes a Firebase app for databaseURL authenticated with the
// service account JSON in credentialsJSON.
func Open(ctx context.Context, databaseURL string, credentialsJSON []byte) (*Client, error) {
	if databaseURL == "" {
		databaseURL = DefaultURL
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	c, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("init database client: %w", err)
	}
	return &Client{db: c}, nil
}

// Set replaces the whole subtree at path with v.
func (c *Client) Set(ctx context.Context, path string, v any) error {
	if err := c.db.NewRef(path).Set(ctx, v); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

// ReportsPath is the node holding a worker's reports keyed by build ID.
func ReportsPath(workerID string) string {
	return "/workers/" + strings.Trim(workerID, "/") + "/reports"
}
