package service

import (
	"context"
	"errors"
	"strings"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/queue"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/revalidate"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// MailPublisher queues a mail job, implemented by *queue.RabbitMQ
type MailPublisher interface {
	PublishMailJob(ctx context.Context, job queue.MailJobPayload) error
}

type Dependencies struct {
	Repository  *repository.Repository
	Logger      *zap.SugaredLogger
	Revalidator revalidate.Revalidator
	// Optional, HIGH and URGENT notifications are not mailed when nil
	MailPublisher MailPublisher
	// Optional, report archiving fails when nil
	S3          *minio.Client
	Bucket      string
	FrontendURL string
}

type baseService struct {
	repo        *repository.Repository
	logger      *zap.SugaredLogger
	validate    *validator.Validate
	revalidator revalidate.Revalidator
	mail        MailPublisher
	s3          *minio.Client
	bucket      string
	frontendURL string
}

type Service struct {
	Property     *PropertyService
	Unit         *UnitService
	Tenant       *TenantService
	Lease        *LeaseService
	PropertyTax  *PropertyTaxService
	Utility      *UtilityService
	Maintenance  *MaintenanceService
	Document     *DocumentService
	Project      *ProjectService
	Task         *TaskService
	Notification *NotificationService
	AuditLog     *AuditLogService
	Report       *ReportService
}

func newBaseService(deps Dependencies) *baseService {
	rv := deps.Revalidator
	if rv == nil {
		rv = revalidate.Noop{}
	}

	return &baseService{
		repo:        deps.Repository,
		logger:      deps.Logger,
		validate:    util.NewValidator(),
		revalidator: rv,
		mail:        deps.MailPublisher,
		s3:          deps.S3,
		bucket:      deps.Bucket,
		frontendURL: strings.TrimRight(deps.FrontendURL, "/"),
	}
}

func NewService(deps Dependencies) *Service {
	bs := newBaseService(deps)

	return &Service{
		Property:     &PropertyService{baseService: bs},
		Unit:         &UnitService{baseService: bs},
		Tenant:       &TenantService{baseService: bs},
		Lease:        &LeaseService{baseService: bs},
		PropertyTax:  &PropertyTaxService{baseService: bs},
		Utility:      &UtilityService{baseService: bs},
		Maintenance:  &MaintenanceService{baseService: bs},
		Document:     &DocumentService{baseService: bs},
		Project:      &ProjectService{baseService: bs},
		Task:         &TaskService{baseService: bs},
		Notification: &NotificationService{baseService: bs},
		AuditLog:     &AuditLogService{baseService: bs},
		Report:       &ReportService{baseService: bs},
	}
}

// Page is one page of a listing
type Page[T any] struct {
	Items     []T   `json:"items"`
	Total     int64 `json:"total"`
	Page      uint  `json:"page"`
	PageSize  uint  `json:"pageSize"`
	TotalPage int   `json:"totalPage"`
}

func newPage[T any](items []T, total int64, page, pageSize uint) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:     items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
		TotalPage: util.CalculateTotalPage(total, pageSize),
	}
}

func (b *baseService) authorize(rc *auth.RequestContext) error {
	if !rc.Authenticated() {
		return ErrUnauthorized
	}
	return nil
}

func (b *baseService) validateInput(input any) error {
	if err := b.validate.Struct(input); err != nil {
		return toValidationError(err)
	}
	return nil
}

// Maps an internal error to what the caller may see. Unauthorized and validation
// errors pass through, everything else is logged and replaced by message.
func (b *baseService) fail(message string, err error) error {
	if errors.Is(err, ErrUnauthorized) {
		return ErrUnauthorized
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}

	b.logger.Errorf("%s: %v", message, err)
	return &ActionError{Message: message, notFound: isNotFound(err)}
}

// Read path: authorize, then run fn and map its error
func read[T any](b *baseService, rc *auth.RequestContext, failMessage string, fn func() (T, error)) (T, error) {
	var zero T
	if err := b.authorize(rc); err != nil {
		return zero, err
	}

	result, err := fn()
	if err != nil {
		return zero, b.fail(failMessage, err)
	}
	return result, nil
}

func apiPath(parts ...string) string {
	return constant.API_V1_PREFIX + "/" + strings.Join(parts, "/")
}

// Link opened from a notification, relative to the frontend
func actionURL(parts ...string) string {
	return "/" + strings.Join(parts, "/")
}
