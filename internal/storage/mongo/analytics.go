package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
)

// timeSpentPipeline groups completed events by a link field (skill_id
// or project_id), joins the referenced collection for the name, and
// sums the event durations in hours.
func timeSpentPipeline(userID, linkField, lookupColl string, start, end *time.Time) mongo.Pipeline {
	match := bson.M{
		"user_id": userID,
		"status":  domain.EventCompleted,
		linkField: bson.M{"$nin": bson.A{nil, ""}},
	}
	timeRange := bson.M{}
	if start != nil {
		timeRange["$gte"] = *start
	}
	if end != nil {
		timeRange["$lte"] = *end
	}
	if len(timeRange) > 0 {
		match["start_time"] = timeRange
	}

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": "$" + linkField,
			"total_ms": bson.M{"$sum": bson.M{
				"$subtract": bson.A{"$end_time", "$start_time"},
			}},
			"task_count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": lookupColl,
			"let":  bson.M{"link_id": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{
					"$eq": bson.A{"$_id", bson.M{"$toObjectId": "$$link_id"}},
				}}},
			},
			"as": "linked",
		}}},
		bson.D{{Key: "$unwind", Value: "$linked"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":         0,
			"id":          "$_id",
			"name":        "$linked.name",
			"total_hours": bson.M{"$divide": bson.A{"$total_ms", 3600000}},
			"task_count":  1,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total_hours", Value: -1}}}},
	}
}

// TimeSpentBySkill sums completed event hours per linked skill.
func (s *Storage) TimeSpentBySkill(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error) {
	return s.timeSpent(ctx, timeSpentPipeline(userID, "skill_id", colSkills, start, end))
}

// TimeSpentByProject sums completed event hours per linked project.
func (s *Storage) TimeSpentByProject(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error) {
	return s.timeSpent(ctx, timeSpentPipeline(userID, "project_id", colProjects, start, end))
}

func (s *Storage) timeSpent(ctx context.Context, pipeline mongo.Pipeline) ([]domain.TimeSpent, error) {
	cursor, err := s.events().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate time spent: %w", err)
	}

	rows := []domain.TimeSpent{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode time spent: %w", err)
	}
	return rows, nil
}

// ProductivityOverview aggregates event counts and hours by status
// over the given window.
func (s *Storage) ProductivityOverview(ctx context.Context, userID string, start, end *time.Time) (domain.ProductivityOverview, error) {
	match := bson.M{"user_id": userID}
	timeRange := bson.M{}
	if start != nil {
		timeRange["$gte"] = *start
	}
	if end != nil {
		timeRange["$lte"] = *end
	}
	if len(timeRange) > 0 {
		match["start_time"] = timeRange
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
			"total_ms": bson.M{"$sum": bson.M{
				"$subtract": bson.A{"$end_time", "$start_time"},
			}},
		}}},
	}

	cursor, err := s.events().Aggregate(ctx, pipeline)
	if err != nil {
		return domain.ProductivityOverview{}, fmt.Errorf("failed to aggregate productivity: %w", err)
	}

	var rows []struct {
		Status  domain.EventStatus `bson:"_id"`
		Count   int64              `bson:"count"`
		TotalMS float64            `bson:"total_ms"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return domain.ProductivityOverview{}, fmt.Errorf("failed to decode productivity: %w", err)
	}

	overview := domain.ProductivityOverview{
		HoursByStatus: map[domain.EventStatus]float64{},
	}
	for _, row := range rows {
		overview.TotalEvents += row.Count
		overview.HoursByStatus[row.Status] = row.TotalMS / 3600000
		switch row.Status {
		case domain.EventCompleted:
			overview.Completed = row.Count
		case domain.EventSkipped:
			overview.Skipped = row.Count
		case domain.EventCancelled:
			overview.Cancelled = row.Count
		}
	}
	if overview.TotalEvents > 0 {
		overview.CompletionRate = float64(overview.Completed) / float64(overview.TotalEvents)
	}
	return overview, nil
}
