package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BeerReview/configs"
	"droscher.com/BeerReview/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dialector, err := Dialector(conf.DB)
	if err != nil {
		return nil, err
	}

	return OpenDialector(dialector, conf.DB, logger)
}

func Dialector(conf configs.DB) (gorm.Dialector, error) {
	switch conf.Driver {
	case DriverPostgres, "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

		return postgres.Open(dsn), nil
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			conf.User, conf.Password, conf.Host, conf.Port, conf.Database)

		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, conf.Driver)
	}
}

func OpenDialector(dialector gorm.Dialector, conf configs.DB, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                   gormLogger,
		TranslateError:           true,
		DisableNestedTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	if err = db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, nil
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Models lists every table in dependency order.
func Models() []any {
	return []any{&model.User{}, &model.Glass{}, &model.Beer{}, &model.Rating{}, &model.Favorite{}}
}

func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(Models()...)
}

func (r *Repository) Drop() error {
	models := Models()

	for index := len(models) - 1; index >= 0; index-- {
		if err := r.DB.Migrator().DropTable(models[index]); err != nil {
			return err
		}
	}

	return nil
}
