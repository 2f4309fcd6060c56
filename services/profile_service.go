package services

import (
	"context"
	"fmt"

	"pawmate_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ProfileService struct {
	Dynamo *DynamoService
}

// SaveProfile creates or wholesale-replaces a pet profile
func (ps *ProfileService) SaveProfile(ctx context.Context, profile models.PetProfile) error {
	// A half-set location is stored as no location at all
	if !profile.HasLocation() {
		profile.Latitude = nil
		profile.Longitude = nil
	}
	return ps.Dynamo.PutItem(ctx, models.PetProfilesTable, profile)
}

// GetProfile retrieves a pet profile by user ID. Returns (nil, nil) when absent.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.PetProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.PetProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.PetProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetAllProfilesExcept scans every profile except the given user's own
func (ps *ProfileService) GetAllProfilesExcept(ctx context.Context, userID string) ([]models.PetProfile, error) {
	var profiles []models.PetProfile
	err := ps.Dynamo.ScanWithFilter(ctx, models.PetProfilesTable, func(item map[string]types.AttributeValue) bool {
		if id, ok := item["userId"].(*types.AttributeValueMemberS); ok {
			return id.Value != userID
		}
		return false
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	return profiles, nil
}

// UpdateProfileFields updates individual profile fields via an edit flow
func (ps *ProfileService) UpdateProfileFields(ctx context.Context, userID string, updates map[string]interface{}) (*models.PetProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","

		attr, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field '%s': %w", k, err)
		}
		expressionAttributeValues[placeholder] = attr
		expressionAttributeNames[attributeName] = k
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ps.Dynamo.UpdateItem(ctx, models.PetProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.PetProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, err
	}
	return &updatedProfile, nil
}

// DeleteProfile removes a pet profile. Relationship records and reports
// referencing the user are left behind as orphans on purpose.
func (ps *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.PetProfilesTable, key)
}
