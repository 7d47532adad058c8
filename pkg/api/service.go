package api

import (
	"github.com/sitevista/gantry/internal/core"
	"github.com/sitevista/gantry/pkg/database"
	"github.com/sitevista/gantry/pkg/engine"
)

// New connects to the given database & engine and returns the tracking API.
func New(dbOpts *database.Options, engOpts *engine.Options) (API, error) {
	db, err := database.NewPostgres(dbOpts)
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewAsynq(engOpts)
	if err != nil {
		db.Close()
		return nil, err
	}
	return core.NewService(db, eng)
}

// NewAPI builds the tracking API over explicit database & engine bindings.
// Useful for embedding and for tests that inject fakes.
func NewAPI(db database.Database, eng engine.Engine) (API, error) {
	return core.NewService(db, eng)
}
