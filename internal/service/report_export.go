package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	filestorage "github.com/SeakMengs/PropDesk/internal/file_storage"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	summarySheet    = "Summary"
	propertiesSheet = "Properties"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	financialReport = "Financial Report"
)

type ExportedReport struct {
	FileName    string
	ContentType string
	Data        []byte
}

type ArchivedReport struct {
	File *model.File `json:"file"`
	URL  string      `json:"url"`
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func boldHeader(f *excelize.File, sheet string, columns int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// Renders the report as an xlsx workbook with a Summary and a Properties sheet
func renderFinancialWorkbook(report FinancialReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Metric", "Amount"},
		{"Revenue", report.Revenue.Total.InexactFloat64()},
		{"Property taxes", report.Expenses.Taxes.InexactFloat64()},
		{"Utilities", report.Expenses.Utilities.InexactFloat64()},
		{"Total expenses", report.Expenses.Total.InexactFloat64()},
		{"Net income", report.NetIncome.InexactFloat64()},
		{"Outstanding taxes", report.Expenses.OutstandingTaxes.InexactFloat64()},
		{"Outstanding utilities", report.Expenses.OutstandingUtilities.InexactFloat64()},
		{"Completed payments", report.Revenue.PaymentCount},
	}

	statuses := make([]string, 0, len(report.Revenue.ByLeaseStatus))
	for status := range report.Revenue.ByLeaseStatus {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		amount := report.Revenue.ByLeaseStatus[constant.LeaseStatus(status)]
		summary = append(summary, []any{fmt.Sprintf("Revenue from %s leases", status), amount.InexactFloat64()})
	}
	summary = append(summary, []any{"Generated at", report.GeneratedAt.UTC().Format(time.RFC3339)})

	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}
	if err := boldHeader(f, summarySheet, 2); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(propertiesSheet); err != nil {
		return nil, err
	}

	properties := [][]any{{"Property", "Revenue", "Property taxes", "Utilities", "Total expenses", "Net income"}}
	for _, p := range report.Properties {
		properties = append(properties, []any{
			p.Name,
			p.Revenue.InexactFloat64(),
			p.Expenses.Taxes.InexactFloat64(),
			p.Expenses.Utilities.InexactFloat64(),
			p.Expenses.Total.InexactFloat64(),
			p.NetIncome.InexactFloat64(),
		})
	}

	if err := writeRows(f, propertiesSheet, properties); err != nil {
		return nil, err
	}
	if err := boldHeader(f, propertiesSheet, 6); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func (rs ReportService) ExportFinancialReport(ctx context.Context, rc *auth.RequestContext) (ExportedReport, error) {
	return read(rs.baseService, rc, "Failed to export financial report", func() (ExportedReport, error) {
		properties, err := rs.repo.Report.LoadPropertyGraph(ctx, nil)
		if err != nil {
			return ExportedReport{}, err
		}

		now := time.Now()
		buf, err := renderFinancialWorkbook(buildFinancialReport(properties, now))
		if err != nil {
			return ExportedReport{}, err
		}

		return ExportedReport{
			FileName:    util.ReportFileName(financialReport, "xlsx", now),
			ContentType: xlsxContentType,
			Data:        buf.Bytes(),
		}, nil
	})
}

// Uploads the exported workbook to object storage and returns a presigned link to it
func (rs ReportService) ArchiveFinancialReport(ctx context.Context, rc *auth.RequestContext) (ArchivedReport, error) {
	return runMutation(ctx, rs.baseService, rc, mutation[ArchivedReport]{
		entityType: constant.EntityTypeFile,
		action:     constant.AuditActionCreate,
		persist: func(ctx context.Context, tx *gorm.DB) (ArchivedReport, error) {
			if rs.s3 == nil {
				return ArchivedReport{}, filestorage.ErrStorageDisabled
			}

			properties, err := rs.repo.Report.LoadPropertyGraph(ctx, tx)
			if err != nil {
				return ArchivedReport{}, err
			}

			now := time.Now()
			buf, err := renderFinancialWorkbook(buildFinancialReport(properties, now))
			if err != nil {
				return ArchivedReport{}, err
			}

			fileName := util.ReportFileName(financialReport, "xlsx", now)
			size := int64(buf.Len())
			info, err := util.UploadReaderToS3(ctx, buf, size, fileName, &util.FileUploadOptions{
				DirectoryPath: util.GetReportDirectoryPath("financial"),
				UniquePrefix:  true,
				Bucket:        rs.bucket,
				ContentType:   xlsxContentType,
				S3:            rs.s3,
			})
			if err != nil {
				return ArchivedReport{}, err
			}

			file, err := rs.repo.File.Create(ctx, tx, &model.File{
				FileName:       fileName,
				UniqueFileName: info.Key,
				BucketName:     info.Bucket,
				Size:           size,
				CreatedByID:    rc.ActorID,
			})
			if err != nil {
				return ArchivedReport{}, err
			}

			url, err := file.PresignedURL(ctx, rs.s3, model.ReportLinkTTL)
			if err != nil {
				return ArchivedReport{}, err
			}

			return ArchivedReport{File: file, URL: url}, nil
		},
		entityID:    func(r ArchivedReport) string { return r.File.ID },
		metadata:    func(r ArchivedReport) any { return map[string]any{"fileName": r.File.FileName} },
		failMessage: "Failed to archive financial report",
	})
}
