package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BeerReview/configs"
	"droscher.com/BeerReview/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BeerReview.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := devLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err = repo.Migrate(); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	logger.Info("database migrated")

	return nil
}

func openRepository(configFile string, logger *zap.Logger) (*repository.Repository, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, err
	}

	return repo, nil
}
