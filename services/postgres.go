package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/heartwired/valentine_api/model"
	"github.com/heartwired/valentine_api/shared"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

// Db Access to raw PostgresService db
func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		// Fallback to individual environment variables
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "valentine"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}

		ds.database = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	return ds.DefaultService.Configure(ctx)
}

// Start opens the connection and migrates any tables that have changed since
// last runtime.
func (ds *PostgresService) Start() (err error) {
	ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.User{},
		&model.Picture{},
		&model.Message{},
		&model.SweetTreat{},
		&model.UnlockCount{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
}

// HandleError maps gorm errors onto the shared AppError taxonomy.
func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(err, "Not Found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewConflictError(err, "Conflict")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewBadRequestError(err, "Related record missing")
	default:
		if strings.Contains(err.Error(), "duplicate key value") {
			return shared.NewConflictError(err, "Conflict")
		}
		return &shared.AppError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
	}
}
