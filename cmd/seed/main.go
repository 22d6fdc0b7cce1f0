package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salescall/internal/config"
	"salescall/internal/model"
	"salescall/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	agentRepo := repository.NewAgentRepo(db)
	customerRepo := repository.NewCustomerRepo(db)

	agents := []model.AgentProfile{
		{Name: "Emma", SupportedLanguage: "en", Active: true},
		{Name: "Sophie", SupportedLanguage: "fr", Active: true},
		{Name: "Jan", SupportedLanguage: "nl", Active: true},
		{Name: "Lukas", SupportedLanguage: "de", Active: true},
		{Name: "Marco", SupportedLanguage: "it", Active: false},
	}
	for i := range agents {
		if err := agentRepo.Create(ctx, &agents[i]); err != nil {
			log.Fatalf("Failed to insert agent %s: %v", agents[i].Name, err)
		}
	}

	customers := []model.Customer{
		{
			Name:         "Pieter Janssens",
			Phone:        "+32-3-555-0101",
			BusinessName: "Frituur 't Hoekske",
			LanguageCode: "nl",
		},
		{
			Name:         "Claire Dubois",
			Phone:        "+32-4-555-0102",
			BusinessName: "Boulangerie Dubois",
			LanguageCode: "fr",
		},
		{
			Name:         "Tom Peeters",
			Phone:        "+32-9-555-0103",
			BusinessName: "Peeters Elektro",
			// No stored preference, the configured default applies.
		},
	}
	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i]); err != nil {
			log.Fatalf("Failed to insert customer %s: %v", customers[i].Name, err)
		}
	}

	fmt.Printf("Seeded %d agents and %d customers\n", len(agents), len(customers))
	for _, c := range customers {
		fmt.Printf("- %s (%s) language=%s\n", c.Name, c.ID, c.LanguageCode)
	}
}
