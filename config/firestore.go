package config

import (
	"context"
	"encoding/json"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

var fsClient *firestore.Client

// InitFirestore builds the shared Firestore client from the service account
// JSON in the environment. Missing or unusable credentials halt the process;
// every handler depends on this client and there is no degraded mode.
func InitFirestore(ctx context.Context) *firestore.Client {
	if fsClient != nil {
		return fsClient
	}

	cfg := Get()
	if cfg.ServiceAccountJSON == "" {
		log.Fatal("SERVICE_ACCOUNT_JSON is not set!")
	}

	projectID := cfg.FirestoreProjectID
	if projectID == "" {
		projectID = projectIDFromServiceAccount(cfg.ServiceAccountJSON)
	}
	if projectID == "" {
		log.Fatal("firestore project id not found in config or service account")
	}

	client, err := firestore.NewClient(ctx, projectID,
		option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	if err != nil {
		log.Fatalf("failed to create firestore client: %v", err)
	}

	fsClient = client
	return fsClient
}

// projectIDFromServiceAccount pulls project_id out of the credential blob so
// deployments only need the one env var.
func projectIDFromServiceAccount(raw string) string {
	var sa struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal([]byte(raw), &sa); err != nil {
		return ""
	}
	return sa.ProjectID
}
