package app

import (
	"golang.org/x/time/rate"

	"github.com/aora/client/internal/aora"
	"github.com/aora/client/internal/appwrite"
	"github.com/aora/client/internal/config"
)

// dependencies wires together the facade client, the flow service, and the
// on-disk session store the commands operate on.
type dependencies struct {
	service  *aora.Service
	client   *appwrite.Client
	sessions sessionFile
}

// buildDependencies constructs the facade client and restores any persisted
// session secret before handing the services to the command layer.
func buildDependencies(cfg config.Config) (dependencies, error) {
	client := appwrite.New(appwrite.Config{
		Endpoint:  cfg.Endpoint,
		ProjectID: cfg.ProjectID,
		Platform:  cfg.Platform,
	}, appwrite.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RequestRate), 1)))

	sessions := sessionFile{path: cfg.SessionFile}
	secret, err := sessions.load()
	if err != nil {
		return dependencies{}, err
	}
	if secret != "" {
		client.SetSession(secret)
	}

	service := aora.New(aora.Dependencies{
		Accounts:  appwrite.NewAccount(client),
		Documents: appwrite.NewDatabases(client),
		Files:     appwrite.NewStorage(client),
		Avatars:   appwrite.NewAvatars(client),
	}, aora.Collections{
		DatabaseID:        cfg.DatabaseID,
		UserCollectionID:  cfg.UserCollectionID,
		VideoCollectionID: cfg.VideoCollectionID,
		StorageID:         cfg.StorageID,
	})

	return dependencies{service: service, client: client, sessions: sessions}, nil
}
