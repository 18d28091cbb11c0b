package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	lambdaclient "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"duesseldorf-family-adventures/internal/models"
	"duesseldorf-family-adventures/internal/services"
)

// ResponseBody is the JSON envelope for every API response
type ResponseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ReportSubmission is the request body for flagging a plan
type ReportSubmission struct {
	Plan   *models.ActivityPlan `json:"plan"`
	Reason string               `json:"reason"`
}

// TriggerRequest is the request body for a manual daily-planner run
type TriggerRequest struct {
	Date         string `json:"date,omitempty"`
	PostalCode   string `json:"plz,omitempty"`
	Effort       string `json:"effort,omitempty"`
	ParentScript bool   `json:"parent_script,omitempty"`
}

var (
	reportStore             *services.PlanReportStore
	lambdaClient            *lambdaclient.Client
	plannerFunctionName     string
)

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	path := request.Path
	method := request.HTTPMethod
	log.Printf("Admin API request: %s %s", method, path)

	switch {
	case method == "GET" && path == "/api/health":
		return respond(200, ResponseBody{Success: true, Message: "ok"})

	case method == "POST" && path == "/api/reports":
		return handleSubmitReport(ctx, request.Body)

	case method == "GET" && path == "/api/reports":
		return handleListReports(ctx)

	case method == "GET" && path == "/api/reports/reasons":
		return respond(200, ResponseBody{Success: true, Message: "report reasons", Data: models.ReportReasons})

	case method == "GET" && strings.HasPrefix(path, "/api/reports/"):
		reportID := strings.TrimPrefix(path, "/api/reports/")
		return handleGetReport(ctx, reportID)

	case method == "POST" && path == "/api/planner/trigger":
		return handleTriggerPlanner(ctx, request.Body)

	default:
		return respond(404, ResponseBody{Success: false, Error: fmt.Sprintf("no route for %s %s", method, path)})
	}
}

func handleSubmitReport(ctx context.Context, body string) (events.APIGatewayProxyResponse, error) {
	var submission ReportSubmission
	if err := json.Unmarshal([]byte(body), &submission); err != nil {
		return respond(400, ResponseBody{Success: false, Error: "invalid request body"})
	}
	if submission.Plan == nil {
		return respond(400, ResponseBody{Success: false, Error: "plan is required"})
	}

	report, err := models.NewPlanReport(submission.Plan, submission.Reason)
	if err != nil {
		return respond(400, ResponseBody{Success: false, Error: err.Error()})
	}

	if err := reportStore.CreateReport(ctx, report); err != nil {
		log.Printf("Failed to store report: %v", err)
		return respond(500, ResponseBody{Success: false, Error: "failed to store report"})
	}

	// Only the anonymized record leaves this handler, never the plan text.
	return respond(201, ResponseBody{Success: true, Message: "report stored", Data: report})
}

// maxReportListing caps how many reports the listing returns
const maxReportListing = 50

func handleListReports(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	reports, err := reportStore.ListReports(ctx)
	if err != nil {
		log.Printf("Failed to list reports: %v", err)
		return respond(500, ResponseBody{Success: false, Error: "failed to list reports"})
	}

	reports = newestFirst(reports, maxReportListing)
	return respond(200, ResponseBody{Success: true, Message: fmt.Sprintf("%d reports", len(reports)), Data: reports})
}

// newestFirst sorts reports by timestamp descending and truncates to limit.
func newestFirst(reports []models.PlanReport, limit int) []models.PlanReport {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].TimestampUTC.After(reports[j].TimestampUTC)
	})
	if len(reports) > limit {
		reports = reports[:limit]
	}
	return reports
}

func handleGetReport(ctx context.Context, reportID string) (events.APIGatewayProxyResponse, error) {
	if reportID == "" {
		return respond(400, ResponseBody{Success: false, Error: "report id is required"})
	}
	report, err := reportStore.GetReport(ctx, reportID)
	if err != nil {
		return respond(404, ResponseBody{Success: false, Error: err.Error()})
	}
	return respond(200, ResponseBody{Success: true, Message: "report", Data: report})
}

func handleTriggerPlanner(ctx context.Context, body string) (events.APIGatewayProxyResponse, error) {
	if plannerFunctionName == "" {
		return respond(503, ResponseBody{Success: false, Error: "planner function not configured"})
	}

	var trigger TriggerRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &trigger); err != nil {
			return respond(400, ResponseBody{Success: false, Error: "invalid request body"})
		}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"source":        "admin-api",
		"trigger-type":  "manual",
		"date":          trigger.Date,
		"plz":           trigger.PostalCode,
		"effort":        trigger.Effort,
		"parent_script": trigger.ParentScript,
	})
	if err != nil {
		return respond(500, ResponseBody{Success: false, Error: "failed to build trigger payload"})
	}

	_, err = lambdaClient.Invoke(ctx, &lambdaclient.InvokeInput{
		FunctionName:   aws.String(plannerFunctionName),
		InvocationType: lambdatypes.InvocationTypeEvent,
		Payload:        payload,
	})
	if err != nil {
		log.Printf("Failed to invoke planner: %v", err)
		return respond(502, ResponseBody{Success: false, Error: "failed to trigger planner"})
	}

	return respond(202, ResponseBody{Success: true, Message: "planner run triggered"})
}

func respond(statusCode int, body ResponseBody) (events.APIGatewayProxyResponse, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: 500, Body: `{"success":false}`}, nil
	}
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(encoded),
	}, nil
}

func main() {
	ctx := context.Background()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	table := os.Getenv("PLAN_REPORTS_TABLE")
	if table == "" {
		table = "mikroabenteuer-plan-reports"
	}
	reportStore = services.NewPlanReportStoreWithClient(dynamodb.NewFromConfig(cfg), table)
	lambdaClient = lambdaclient.NewFromConfig(cfg)
	plannerFunctionName = os.Getenv("DAILY_PLANNER_FUNCTION_NAME")

	lambda.Start(handleRequest)
}
