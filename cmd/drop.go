package cmd

import (
	"go.uber.org/zap"
)

type DropCmd struct {
	ConfigFile string `default:".BeerReview.toml" help:"Path to config file" short:"c"`
}

func (d *DropCmd) Run(_ *Context) error {
	logger := devLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	repo, err := openRepository(d.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err = repo.Drop(); err != nil {
		logger.Error("error dropping tables", zap.Error(err))

		return err
	}

	logger.Info("tables dropped")

	return nil
}
