// Command seed populates the database with demo users and friendships.
package main

import (
	"flag"
	"log"

	"github.com/adnan275/zync/internal/config"
	"github.com/adnan275/zync/internal/database"
	"github.com/adnan275/zync/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 40, "Number of users to create")
	friendsPerUser := flag.Int("friends", 4, "Target accepted friendships per user")
	pendingPerUser := flag.Int("pending", 2, "Target pending requests per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d friends each, %d pending each, clean=%v",
		*numUsers, *friendsPerUser, *pendingPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:       *numUsers,
		FriendsPerUser: *friendsPerUser,
		PendingPerUser: *pendingPerUser,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Database populated with demo data.")
}
