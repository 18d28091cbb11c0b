package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"duesseldorf-family-adventures/internal/models"
)

const defaultPlanReportsTable = "mikroabenteuer-plan-reports"

// PlanReportStore persists anonymized plan reports in DynamoDB.
type PlanReportStore struct {
	client *dynamodb.Client
	table  string
}

// NewPlanReportStore creates a store using the default AWS configuration.
// The table name comes from PLAN_REPORTS_TABLE when set.
func NewPlanReportStore(ctx context.Context) (*PlanReportStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	table := os.Getenv("PLAN_REPORTS_TABLE")
	if table == "" {
		table = defaultPlanReportsTable
	}

	return &PlanReportStore{
		client: dynamodb.NewFromConfig(cfg),
		table:  table,
	}, nil
}

// NewPlanReportStoreWithClient creates a store around an existing client.
func NewPlanReportStoreWithClient(client *dynamodb.Client, table string) *PlanReportStore {
	return &PlanReportStore{client: client, table: table}
}

// CreateReport stores a plan report.
func (s *PlanReportStore) CreateReport(ctx context.Context, report *models.PlanReport) error {
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		return fmt.Errorf("failed to marshal plan report: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store plan report: %w", err)
	}

	log.Printf("[REPORTS] Stored report %s (hash %s)", report.ReportID, report.PlanHash[:8])
	return nil
}

// GetReport retrieves a single report by ID.
func (s *PlanReportStore) GetReport(ctx context.Context, reportID string) (*models.PlanReport, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"report_id": &types.AttributeValueMemberS{Value: reportID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get plan report: %w", err)
	}
	if result.Item == nil {
		return nil, fmt.Errorf("plan report %s not found", reportID)
	}

	var report models.PlanReport
	if err := attributevalue.UnmarshalMap(result.Item, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan report: %w", err)
	}
	return &report, nil
}

// ListReports scans all stored reports; ordering is not guaranteed,
// callers sort as needed.
func (s *PlanReportStore) ListReports(ctx context.Context) ([]models.PlanReport, error) {
	var reports []models.PlanReport
	var lastKey map[string]types.AttributeValue

	for {
		result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list plan reports: %w", err)
		}

		var page []models.PlanReport
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan reports: %w", err)
		}
		reports = append(reports, page...)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}
	return reports, nil
}
