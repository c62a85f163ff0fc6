package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// Lower-cased header names recognised in a tenant import file
const (
	csvFirstName        = "firstname"
	csvLastName         = "lastname"
	csvEmail            = "email"
	csvPhone            = "phone"
	csvCompany          = "company"
	csvStatus           = "status"
	csvEmergencyContact = "emergencycontact"
	csvNotes            = "notes"
)

var requiredTenantColumns = []string{csvFirstName, csvLastName, csvEmail, csvStatus}

type TenantImportResult struct {
	BatchID string          `json:"batchId"`
	Count   int             `json:"count"`
	Tenants []*model.Tenant `json:"tenants"`
}

// Parses an import file into tenant inputs. A status outside ACTIVE, INACTIVE and
// PENDING (any case) rejects the whole file.
func parseTenantCSV(data string) ([]TenantInput, error) {
	records, err := util.ReadCSV(strings.NewReader(data))
	if err != nil {
		return nil, fieldError("file", err.Error())
	}
	if len(records) == 0 {
		return nil, fieldError("file", "CSV file is empty")
	}

	present := make(map[string]bool, len(records[0]))
	for _, header := range records[0] {
		present[util.NormalizeCSVHeader(header)] = true
	}
	var missing []string
	for _, column := range requiredTenantColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fieldError("file", fmt.Sprintf("CSV file is missing column(s): %s", strings.Join(missing, ", ")))
	}

	rows := util.ParseCSVToMap(records)
	if len(rows) == 0 {
		return nil, fieldError("file", "CSV file has no tenant rows")
	}

	inputs := make([]TenantInput, 0, len(rows))
	for i, row := range rows {
		// Header is line 1
		line := i + 2

		status, err := constant.ParseTenantStatus(row[csvStatus])
		if err != nil {
			return nil, newValidationError(
				fmt.Sprintf("Row %d: %v", line, err),
				util.ApiError{Field: fmt.Sprintf("row %d status", line), Message: err.Error()},
			)
		}

		inputs = append(inputs, TenantInput{
			FirstName:        row[csvFirstName],
			LastName:         row[csvLastName],
			Email:            row[csvEmail],
			Phone:            row[csvPhone],
			Company:          row[csvCompany],
			Status:           status,
			EmergencyContact: row[csvEmergencyContact],
			Notes:            row[csvNotes],
		})
	}

	return inputs, nil
}

func (ts TenantService) validateTenantRows(inputs []TenantInput) error {
	var fields []util.ApiError
	for i, in := range inputs {
		if err := ts.validate.Struct(in); err != nil {
			for _, f := range toValidationError(err).Fields {
				fields = append(fields, util.ApiError{
					Field:   fmt.Sprintf("row %d %s", i+2, f.Field),
					Message: f.Message,
				})
			}
		}
	}

	if len(fields) > 0 {
		return newValidationError("CSV file contains invalid rows", fields...)
	}
	return nil
}

// Imports every row of data in one transaction, or nothing
func (ts TenantService) ImportTenantsFromCSV(ctx context.Context, rc *auth.RequestContext, data string) (TenantImportResult, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[TenantImportResult]{
		entityType:    constant.EntityTypeTenant,
		action:        constant.AuditActionCreate,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (TenantImportResult, error) {
			inputs, err := parseTenantCSV(data)
			if err != nil {
				return TenantImportResult{}, err
			}
			if err := ts.validateTenantRows(inputs); err != nil {
				return TenantImportResult{}, err
			}

			batchId, err := gonanoid.New()
			if err != nil {
				return TenantImportResult{}, err
			}

			tenants := make([]*model.Tenant, len(inputs))
			for i, in := range inputs {
				tenants[i] = in.toModel()
			}
			if _, err := ts.repo.Tenant.CreateMany(ctx, tx, tenants); err != nil {
				return TenantImportResult{}, err
			}

			return TenantImportResult{BatchID: batchId, Count: len(tenants), Tenants: tenants}, nil
		},
		entityID: func(r TenantImportResult) string { return r.BatchID },
		metadata: func(r TenantImportResult) any { return map[string]any{"count": r.Count} },
		recipients: func(ctx context.Context, r TenantImportResult) ([]notificationDraft, error) {
			return ts.broadcast(ctx, notificationDraft{
				Title:     "Tenants imported",
				Message:   fmt.Sprintf("%d tenants were imported from CSV", r.Count),
				Type:      constant.NotificationTypeTenant,
				Priority:  constant.NotificationPriorityMedium,
				ActionURL: actionURL("tenants"),
			})
		},
		paths:       tenantPaths,
		failMessage: "Failed to import tenants",
	})
}
