package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/atelieraurum/studio-api/common"
	"github.com/atelieraurum/studio-api/logger"
)

var ErrFirestoreInitialization = errors.New("firestore initialization error")

// FirestoreClient wraps the project Firestore client.
type FirestoreClient struct {
	fs *firestore.Client
}

// NewFirestore connects a Firestore client for the ambient project.
func NewFirestore(ctx context.Context, log *logger.Logging) (*FirestoreClient, error) {
	fs, err := firestore.NewClient(ctx, common.ProjectID)
	if err != nil {
		log.Logger(ctx).Errorf("%s: %s", ErrFirestoreInitialization, err)
		return nil, ErrFirestoreInitialization
	}

	return &FirestoreClient{fs}, nil
}
