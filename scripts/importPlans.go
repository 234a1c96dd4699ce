package main

import (
	"encoding/csv"
	"lms/config"
	"lms/database"
	"lms/models"
	"log"
	"os"
	"strconv"
	"strings"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Plans.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for _, row := range records[1:] {
		plan := models.SubscriptionPlan{
			Name:         getField(row, headerIndex, "name"),
			Description:  getField(row, headerIndex, "description"),
			Price:        parseFloat(getField(row, headerIndex, "price")),
			DurationDays: parseInt(getField(row, headerIndex, "durationDays")),
			IsActive:     getField(row, headerIndex, "isActive") != "false",
			IsDeleted:    false,
		}

		// Skip rows without a name or duration
		if plan.Name == "" || plan.DurationDays == 0 {
			skipped++
			continue
		}

		// Check if plan exists by name
		var existing models.SubscriptionPlan
		result := database.Database.Db.Where("name = ? AND is_deleted = ?", plan.Name, false).First(&existing)

		if result.Error != nil {
			// Insert new plan
			if err := database.Database.Db.Create(&plan).Error; err != nil {
				log.Printf("Error inserting plan %s: %v", plan.Name, err)
				continue
			}
			inserted++
		} else {
			// Update existing plan
			existing.Description = plan.Description
			existing.Price = plan.Price
			existing.DurationDays = plan.DurationDays
			existing.IsActive = plan.IsActive

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating plan %s: %v", plan.Name, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
