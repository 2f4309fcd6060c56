package models

// Report is a user complaint against another user's profile
type Report struct {
	ReportID    string `dynamodbav:"reportId" json:"reportId"` // ✅ Partition Key
	ReporterID  string `dynamodbav:"reporterId" json:"reporterId"`
	ReportedID  string `dynamodbav:"reportedId" json:"reportedId"`
	Description string `dynamodbav:"description" json:"description"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// ReportsTable is the DynamoDB table name for complaints
const ReportsTable = "Reports"
