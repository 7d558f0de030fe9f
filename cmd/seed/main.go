package main

import (
	"context"
	"encoding/json"
	"log"

	"volunteer-connect/internal/auth"
	"volunteer-connect/internal/config"
	"volunteer-connect/internal/database"
	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
	"volunteer-connect/internal/services"
)

type seedOrg struct {
	name, description, location string
	owner                       int
	opportunity                 string
	hours                       string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Seeding database...")
	if err := database.Reset(db); err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewRepository(db)
	authService := services.NewAuthService(repo, auth.NewPasswordHasher(cfg.App.BcryptCost), auth.NewTokenIssuer(cfg.App.JWTSecret, cfg.App.TokenTTL))
	orgService := services.NewOrganizationService(repo)
	oppService := services.NewOpportunityService(repo)
	appService := services.NewApplicationService(repo)
	paymentService := services.NewPaymentService(repo)

	people := []struct {
		name, email string
		role        models.Role
	}{
		{"Nus", "nus@example.com", models.RoleOrganization},
		{"Ednah", "ednah@example.com", models.RoleOrganization},
		{"Xervi", "xervi@example.com", models.RoleVolunteer},
	}

	users := make([]*models.User, len(people))
	for i, p := range people {
		role := string(p.role)
		password := "password123"
		users[i], err = authService.Register(ctx, services.RegisterInput{
			Name:     &p.name,
			Email:    &p.email,
			Password: &password,
			Role:     &role,
		})
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", p.name, err)
		}
	}

	orgs := []seedOrg{
		{"Helping Hands", "Volunteers helping communities", "Nairobi", 0, "Community Outreach", "4"},
		{"Green Earth", "Environmental conservation group", "Mombasa", 1, "Beach Cleanup", "3"},
		{"Food for All", "Providing meals to the needy", "Kisumu", 2, "Meal Distribution", "5"},
	}

	var firstOpp *models.Opportunity
	for _, o := range orgs {
		org, err := orgService.CreateOrganization(ctx, services.CreateOrganizationInput{
			Name:        &o.name,
			Description: &o.description,
			Location:    &o.location,
			OwnerID:     &users[o.owner].ID,
		})
		if err != nil {
			log.Fatalf("Failed to seed organization %s: %v", o.name, err)
		}

		opp, err := oppService.CreateOpportunity(ctx, services.CreateOpportunityInput{
			OrganizationID: &org.ID,
			CreatedBy:      &users[o.owner].ID,
			Title:          &o.opportunity,
			Location:       &o.location,
			Duration:       json.RawMessage(o.hours),
		})
		if err != nil {
			log.Fatalf("Failed to seed opportunity %s: %v", o.opportunity, err)
		}
		if firstOpp == nil {
			firstOpp = opp
		}
	}

	volunteer := users[2]
	motivation := "I want to give back to my community"
	if _, err := appService.CreateApplication(ctx, services.CreateApplicationInput{
		UserID:            &volunteer.ID,
		OpportunityID:     &firstOpp.ID,
		MotivationMessage: &motivation,
	}); err != nil {
		log.Fatalf("Failed to seed application: %v", err)
	}

	completed := string(models.PaymentStatusCompleted)
	if _, err := paymentService.CreatePayment(ctx, services.CreatePaymentInput{
		UserID:        &volunteer.ID,
		OpportunityID: &firstOpp.ID,
		Amount:        json.RawMessage(`"50.00"`),
		PaymentStatus: &completed,
	}); err != nil {
		log.Fatalf("Failed to seed payment: %v", err)
	}

	log.Println("Database seeded successfully!")
}
