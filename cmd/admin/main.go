package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "seed-badges":
		if err := seedBadges(db); err != nil {
			log.Fatalf("Error seeding badges: %v", err)
		}
		fmt.Println("Badge catalog seeded.")
	case "seed-templates":
		if err := seedTemplates(db); err != nil {
			log.Fatalf("Error seeding templates: %v", err)
		}
		fmt.Println("Response templates seeded.")
	case "set-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-status <complaint_id> <status>")
			os.Exit(1)
		}
		complaintID, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Invalid complaint ID. Please provide an integer.")
			os.Exit(1)
		}
		status := os.Args[3]
		if err := setStatus(storageSvc, uint(complaintID), status); err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("Complaint %d moved to %s.\n", complaintID, status)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

// seedBadges installs the static badge catalog. FirstOrCreate keeps the
// command safe to re-run.
func seedBadges(db *gorm.DB) error {
	catalog := []models.Badge{
		{Name: "First Voice", Description: "Submitted your first complaint", Icon: "🗣️", RequirementType: models.RequirementComplaintsSubmitted, RequirementValue: 1},
		{Name: "Persistent Reporter", Description: "Submitted 5 complaints", Icon: "📣", RequirementType: models.RequirementComplaintsSubmitted, RequirementValue: 5},
		{Name: "Campus Watchdog", Description: "Submitted 10 complaints", Icon: "🔭", RequirementType: models.RequirementComplaintsSubmitted, RequirementValue: 10},
	}
	for _, badge := range catalog {
		if err := db.Where("name = ?", badge.Name).FirstOrCreate(&badge).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTemplates(db *gorm.DB) error {
	templates := []models.ResponseTemplate{
		{Title: "Acknowledged", Category: "General", TemplateText: "Thank you for your report. We are looking into it and will update you shortly.", Tags: []string{"ack"}},
		{Title: "Maintenance Scheduled", Category: "Facilities", TemplateText: "A maintenance visit has been scheduled. Expect resolution within the stated due date.", Tags: []string{"facilities", "maintenance"}},
		{Title: "Resolved - Please Rate", Category: "General", TemplateText: "Your complaint has been resolved. Please rate your experience so we can improve.", Tags: []string{"resolved", "rating"}},
	}
	for _, template := range templates {
		if err := db.Where("title = ?", template.Title).FirstOrCreate(&template).Error; err != nil {
			return err
		}
	}
	return nil
}

func setStatus(s storage.Storage, complaintID uint, status string) error {
	if !models.KnownStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}
	if status == models.StatusResolved {
		transitioned, err := s.MarkResolved(complaintID, time.Now())
		if err != nil {
			return err
		}
		if transitioned {
			return s.CreditResolution(complaintID)
		}
		return nil
	}
	return s.SetStatus(complaintID, status)
}
