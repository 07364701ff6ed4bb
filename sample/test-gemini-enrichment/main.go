package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/focusin/hub/internal/entity"
	"github.com/focusin/hub/internal/infra/integration/gemini"
)

// Manual smoke test against the live Gemini API. Needs GEMINI_API_KEY.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY must be set")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, apiKey, model)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	fmt.Printf("Enriching %d sample contacts with %s...\n\n", len(entity.SampleContacts), model)

	enriched, err := client.EnrichLeads(ctx, entity.SampleContacts)
	if err != nil {
		log.Fatalf("enrichment failed: %v", err)
	}

	for _, lead := range enriched {
		fmt.Printf("%s <%s>\n", lead.Name, lead.Email)
		fmt.Printf("   institution: %s\n", lead.Institution)
		fmt.Printf("   product:     %s\n", lead.ProductInterest)
		fmt.Printf("   reasoning:   %s\n\n", lead.Reasoning)
	}
}
