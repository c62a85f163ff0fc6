package appcontext

import (
	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/revalidate"
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Service runs every back office operation through the mutation envelope.
	Service *service.Service

	// JWTService verifies access tokens issued by the identity provider.
	JWTService auth.JWTInterface

	// Cache serves list pages and is revalidated by the services after each mutation.
	Cache *revalidate.Cache

	// Nil when MinIO is not configured
	S3 *minio.Client
}
