// Package main provides a small admin utility to mark accounts as onboarded
// with sensible profile defaults, useful when importing users in bulk.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/adnan275/zync/internal/config"
	"github.com/adnan275/zync/internal/database"
	"github.com/adnan275/zync/internal/repository"
	"github.com/adnan275/zync/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/markonboarded <email> [email...]  - Mark accounts as onboarded")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userService := service.NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	failed := 0
	for _, email := range os.Args[1:] {
		user, err := userService.MarkOnboarded(ctx, email)
		if err != nil {
			log.Printf("%s: %v", email, err)
			failed++
			continue
		}
		fmt.Printf("%s: onboarded (id=%d, %s -> %s)\n",
			user.Email, user.ID, user.NativeLanguage, user.LearningLanguage)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
