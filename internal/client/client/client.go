package client

import (
	"context"
	"net/url"

	"github.com/physiofit/clinic/internal/client/models"
)

// Client is the subset of the clinic REST API the terminal client consumes.
type Client interface {
	// ObtainToken exchanges email and password for a credential pair.
	ObtainToken(ctx context.Context, email string, password []byte) (*models.Credential, error)
	// Register creates a patient account.
	Register(ctx context.Context, req models.RegisterRequest) error
	// Get fetches path (relative to the API root) and decodes the JSON body into out.
	Get(ctx context.Context, path string, query url.Values, out any) error
}
