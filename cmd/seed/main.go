package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"homeos/database"
	"homeos/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// Try loading from project root (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	adminUser := seedCmd.String("admin", "admin", "Username for the initial admin account")
	adminEmail := seedCmd.String("email", "admin@localhost", "Email for the initial admin account")
	adminPassword := seedCmd.String("password", utils.DefaultAdminPassword, "Password for the initial admin account")
	skipExercises := seedCmd.Bool("skip-exercises", false, "Seed only the ingredient catalog")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		adminID, err := utils.SeedAdminUser(database.DB, *adminUser, *adminEmail, *adminPassword)
		if err != nil {
			log.Fatalf("Error seeding admin user: %v", err)
		}
		if err := utils.SeedIngredients(database.DB); err != nil {
			log.Fatalf("Error seeding ingredients: %v", err)
		}
		if !*skipExercises {
			if err := utils.SeedExercises(database.DB, adminID); err != nil {
				log.Fatalf("Error seeding exercises: %v", err)
			}
		}
		log.Println("Seeding complete")

	case "clear":
		clearCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := utils.ClearCatalogs(database.DB); err != nil {
			log.Fatalf("Error clearing catalogs: %v", err)
		}

	case "help", "-h", "--help":
		printHelp()

	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed    Create the admin account and seed the ingredient and exercise catalogs")
	fmt.Println("          --admin, --email, --password, --skip-exercises")
	fmt.Println("  clear   Remove all seeded ingredients and exercises")
}
