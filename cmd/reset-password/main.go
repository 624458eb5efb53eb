package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/sca-operations5/hostelapp-srikanth/internal/repository"
	"github.com/sca-operations5/hostelapp-srikanth/pkg/database"
)

func main() {
	email := flag.String("email", "admin@example.com", "account email")
	password := flag.String("password", "", "new password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("❌ -password is required")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find account
	users := repository.NewUserRepo(db)
	user, err := users.FindByEmail(*email)
	if err != nil {
		log.Fatalf("❌ User %s not found in database: %v", *email, err)
	}

	// 4. Hash and update. Clearing the token version signs out any live
	// session using the old password.
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	if err := users.UpdatePassword(user.ID, user.Password); err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}
	if err := users.UpdateTokenVersion(user.ID, ""); err != nil {
		log.Fatalf("❌ Failed to invalidate old sessions: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", *email)
}
