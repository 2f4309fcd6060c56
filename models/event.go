package models

// Event is a pet-owner meetup announced by an admin
type Event struct {
	EventID     string `dynamodbav:"eventId" json:"eventId"` // ✅ Partition Key
	Name        string `dynamodbav:"name" json:"name"`
	Description string `dynamodbav:"description" json:"description"`
	Date        string `dynamodbav:"date" json:"date"` // YYYY-MM-DD
	Address     string `dynamodbav:"address" json:"address"`
	PhotoRef    string `dynamodbav:"photoRef,omitempty" json:"photoRef,omitempty"`
}

// EventsTable is the DynamoDB table name for events
const EventsTable = "Events"
