package services

import (
	"context"
	"fmt"
	"time"

	"pawmate_server/models"

	"github.com/google/uuid"
)

type EventService struct {
	Dynamo *DynamoService
}

// AddEvent stores a new meetup announcement
func (es *EventService) AddEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return nil, fmt.Errorf("event date must be YYYY-MM-DD: %w", err)
	}
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	if err := es.Dynamo.PutItem(ctx, models.EventsTable, event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListUpcomingEvents returns events happening today or later
func (es *EventService) ListUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	today := time.Now().UTC().Format("2006-01-02")

	var events []models.Event
	err := es.Dynamo.ScanWithFilter(ctx, models.EventsTable, nil, &events)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var upcoming []models.Event
	for _, event := range events {
		// ISO dates compare lexicographically
		if event.Date >= today {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}
