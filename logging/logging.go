package logging

import (
	"os"

	"go.uber.org/zap"
)

// Init installs the global zap logger used through zap.S() across the module.
// TWEETLAB_ENV=production switches to the JSON production encoder.
func Init() (func(), error) {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("TWEETLAB_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return func() {}, err
	}

	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}
