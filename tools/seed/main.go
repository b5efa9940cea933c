package main

import (
	"flag"
	"fmt"
	"log"

	"event-app/config"
	"event-app/internal/model"
	"event-app/internal/repository"
	"event-app/pkg/db"
	"event-app/pkg/password"
	"event-app/pkg/slug"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeds the user table with fake accounts for local development.
// All accounts share the default password "password123".
func main() {
	count := flag.Int("n", 10, "number of users to create")
	flag.Parse()

	cfg := config.LoadConfig()
	orm, err := db.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.CloseDB()

	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	userRepo := repository.NewUserRepository(orm)

	hash, err := password.Hash("password123")
	if err != nil {
		log.Fatalf("Password hashing failed: %v", err)
	}

	for i := 0; i < *count; i++ {
		firstName := gofakeit.FirstName()
		lastName := gofakeit.LastName()
		email := gofakeit.Email()

		uniqueSlug, err := uniqueSlug(userRepo, firstName, lastName)
		if err != nil {
			log.Fatalf("Slug generation failed: %v", err)
		}

		user := &model.User{
			FirstName:    firstName,
			LastName:     lastName,
			Email:        email,
			PasswordHash: hash,
			Slug:         uniqueSlug,
		}
		if err := userRepo.Create(user); err != nil {
			// Duplicate fake email, just skip it
			fmt.Printf("Skipped user %s %s: %v\n", firstName, lastName, err)
			continue
		}
		fmt.Printf("Created user: %s %s (%s) slug=%s\n", firstName, lastName, email, uniqueSlug)
	}
	fmt.Println("Seeding complete!")
}

func uniqueSlug(repo *repository.UserRepository, firstName, lastName string) (string, error) {
	base := slug.Make(firstName, lastName)
	unique := base
	for count := 1; ; count++ {
		exists, err := repo.SlugExists(unique)
		if err != nil {
			return "", err
		}
		if !exists {
			return unique, nil
		}
		unique = fmt.Sprintf("%s-%d", base, count)
	}
}
