package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salescall/internal/model"
)

// AgentRepo is the read side of the agent registry. Agents are owned and
// mutated by the external platform; Create exists for seeding only.
type AgentRepo interface {
	Create(ctx context.Context, agent *model.AgentProfile) error
	ListActive(ctx context.Context, language model.LanguageCode) ([]model.AgentProfile, error)
}

type agentRepo struct {
	collection *mongo.Collection
}

// NewAgentRepo creates a new agent repository
func NewAgentRepo(db *mongo.Database) AgentRepo {
	return &agentRepo{
		collection: db.Collection("agents"),
	}
}

func (r *agentRepo) Create(ctx context.Context, agent *model.AgentProfile) error {
	if agent.ID == "" {
		agent.ID = "a_" + uuid.New().String()[:8]
	}
	agent.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, agent)
	return err
}

// ListActive returns active agents, optionally filtered by supported
// language. Sorted by name then id so ordering is stable across calls.
func (r *agentRepo) ListActive(ctx context.Context, language model.LanguageCode) ([]model.AgentProfile, error) {
	filter := bson.M{"active": true}
	if language != "" {
		filter["supportedLanguage"] = language
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agents []model.AgentProfile
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}
