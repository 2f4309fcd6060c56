package services

import (
	"context"
	"fmt"

	"pawmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ReportService struct {
	Dynamo *DynamoService
}

// AddReport stores a complaint for the moderation workflow
func (rs *ReportService) AddReport(ctx context.Context, report models.Report) error {
	return rs.Dynamo.PutItem(ctx, models.ReportsTable, report)
}

// GetReport fetches a complaint by id. Returns (nil, nil) when absent.
func (rs *ReportService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	key := map[string]types.AttributeValue{
		"reportId": &types.AttributeValueMemberS{Value: reportID},
	}

	item, err := rs.Dynamo.GetItem(ctx, models.ReportsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var report models.Report
	if err := attributevalue.UnmarshalMap(item, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// ListReports returns every open complaint
func (rs *ReportService) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := rs.Dynamo.ScanWithFilter(ctx, models.ReportsTable, nil, &reports); err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	return reports, nil
}

// DeleteReport removes a single complaint
func (rs *ReportService) DeleteReport(ctx context.Context, reportID string) error {
	key := map[string]types.AttributeValue{
		"reportId": &types.AttributeValueMemberS{Value: reportID},
	}
	return rs.Dynamo.DeleteItem(ctx, models.ReportsTable, key)
}

// DeleteReportsAgainst removes every complaint against a user, used when
// moderation deletes the profile.
func (rs *ReportService) DeleteReportsAgainst(ctx context.Context, reportedID string) error {
	reports, err := rs.ListReports(ctx)
	if err != nil {
		return err
	}
	for _, report := range reports {
		if report.ReportedID != reportedID {
			continue
		}
		if err := rs.DeleteReport(ctx, report.ReportID); err != nil {
			return err
		}
	}
	return nil
}
