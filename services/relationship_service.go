package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"pawmate_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ledgerQueryLimit bounds a single ledger page. Plenty for one user's edges.
const ledgerQueryLimit = 500

type RelationshipService struct {
	Dynamo *DynamoService
}

// UpsertReaction writes the authoritative record for (actorID, targetID).
// A later reaction for the same pair replaces the previous state.
func (rs *RelationshipService) UpsertReaction(ctx context.Context, actorID, targetID, state string) error {
	if !models.ValidReactionStates[state] {
		return fmt.Errorf("invalid reaction state '%s'", state)
	}

	record := models.RelationshipRecord{
		ActorID:      actorID,
		TargetID:     targetID,
		State:        state,
		SeenByTarget: false,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := rs.Dynamo.PutItem(ctx, models.RelationshipsTable, record); err != nil {
		log.Printf("❌ Failed to save reaction %s -> %s (%s): %v", actorID, targetID, state, err)
		return err
	}
	log.Printf("✅ Reaction saved: %s -> %s (%s)", actorID, targetID, state)
	return nil
}

// queryByActor fetches every record where the user reacted
func (rs *RelationshipService) queryByActor(ctx context.Context, actorID string) ([]models.RelationshipRecord, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := rs.Dynamo.QueryItems(ctx, models.RelationshipsTable, keyCondition, expressionValues, nil, ledgerQueryLimit)
	if err != nil {
		return nil, err
	}

	var records []models.RelationshipRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal relationship records: %w", err)
	}
	return records, nil
}

// queryByTarget fetches every record where the user was reacted to, via the GSI
func (rs *RelationshipService) queryByTarget(ctx context.Context, targetID string) ([]models.RelationshipRecord, error) {
	keyCondition := "targetId = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: targetID},
	}

	items, err := rs.Dynamo.QueryItemsWithIndex(ctx, models.RelationshipsTable, models.TargetIDIndex, keyCondition, expressionValues, nil, ledgerQueryLimit)
	if err != nil {
		return nil, err
	}

	var records []models.RelationshipRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal relationship records: %w", err)
	}
	return records, nil
}

// ExcludedIDs computes the exclusion set for candidate discovery: every user
// the given user has a record with, in either direction, regardless of state.
func (rs *RelationshipService) ExcludedIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	excluded := make(map[string]struct{})

	asActor, err := rs.queryByActor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outbound records: %w", err)
	}
	for _, rec := range asActor {
		excluded[rec.TargetID] = struct{}{}
	}

	asTarget, err := rs.queryByTarget(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inbound records: %w", err)
	}
	for _, rec := range asTarget {
		excluded[rec.ActorID] = struct{}{}
	}

	return excluded, nil
}

// InboundLikes returns the plain likes waiting in the user's inbox
func (rs *RelationshipService) InboundLikes(ctx context.Context, userID string) ([]models.RelationshipRecord, error) {
	records, err := rs.queryByTarget(ctx, userID)
	if err != nil {
		return nil, err
	}

	var likes []models.RelationshipRecord
	for _, rec := range records {
		if rec.State == models.StateLike {
			likes = append(likes, rec)
		}
	}
	return likes, nil
}

// UnseenMutualMatches returns mutual matches the user has not drained yet
func (rs *RelationshipService) UnseenMutualMatches(ctx context.Context, userID string) ([]models.RelationshipRecord, error) {
	records, err := rs.queryByTarget(ctx, userID)
	if err != nil {
		return nil, err
	}

	var matches []models.RelationshipRecord
	for _, rec := range records {
		if rec.State == models.StateMutualMatch && !rec.SeenByTarget {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// MarkMatchSeen flips seenByTarget on the (actorID, targetID) record
func (rs *RelationshipService) MarkMatchSeen(ctx context.Context, actorID, targetID string) error {
	key := map[string]types.AttributeValue{
		"actorId":  &types.AttributeValueMemberS{Value: actorID},
		"targetId": &types.AttributeValueMemberS{Value: targetID},
	}
	_, err := rs.Dynamo.UpdateItem(ctx, models.RelationshipsTable,
		"SET seenByTarget = :seen", key,
		map[string]types.AttributeValue{
			":seen": &types.AttributeValueMemberBOOL{Value: true},
		}, nil,
	)
	return err
}

// Reciprocate upgrades likerID's like on userID into a mutual match owned by
// userID. The insert of the mutual_match record and the delete of the original
// like happen in one TransactWriteItems: a crash can not leave both alive, nor
// neither.
func (rs *RelationshipService) Reciprocate(ctx context.Context, userID, likerID string) error {
	match := models.RelationshipRecord{
		ActorID:      userID,
		TargetID:     likerID,
		State:        models.StateMutualMatch,
		SeenByTarget: false,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	matchItem, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal mutual match record: %w", err)
	}

	err = rs.Dynamo.TransactWriteItems(ctx, []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName: aws.String(models.RelationshipsTable),
				Item:      matchItem,
			},
		},
		{
			Delete: &types.Delete{
				TableName: aws.String(models.RelationshipsTable),
				Key: map[string]types.AttributeValue{
					"actorId":  &types.AttributeValueMemberS{Value: likerID},
					"targetId": &types.AttributeValueMemberS{Value: userID},
				},
				// The like must still exist; a repeated reciprocation fails instead
				// of resurrecting the pair
				ConditionExpression: aws.String("attribute_exists(actorId)"),
			},
		},
	})
	if err != nil {
		log.Printf("❌ Reciprocation failed for %s ❤️ %s: %v", userID, likerID, err)
		return err
	}

	log.Printf("🎉 Mutual match recorded: %s ❤️ %s", userID, likerID)
	return nil
}
