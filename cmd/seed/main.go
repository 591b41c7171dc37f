// Seed creates a demo data set: three users, a project with two
// contributors, a couple of issues, and a comment thread. Intended for local
// development against an empty database.
package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"softdesk/internal/config"
	"softdesk/internal/db"
	"softdesk/internal/model"
	"softdesk/internal/repository"
)

const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Contributor{},
		&model.Issue{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	store := repository.NewStore(gormDB)

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []*model.User{
		{Username: "alice", Email: "alice@example.com", Age: 30, CanBeContacted: true},
		{Username: "bob", Email: "bob@example.com", Age: 25},
		{Username: "carol", Email: "carol@example.com", Age: 28, CanDataBeShared: true},
	}
	for _, u := range users {
		u.PasswordHash = string(hashed)
		if err := store.Users().Create(ctx, u); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Username, err)
		}
	}
	alice, bob, carol := users[0], users[1], users[2]
	log.Printf("Created %d users (password %q)", len(users), seedPassword)

	project := &model.Project{
		Title:       "SoftDesk API",
		Description: "Issue tracking backend",
		Type:        model.ProjectTypeBackEnd,
		AuthorID:    alice.ID,
	}
	err = store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Projects().Create(ctx, project); err != nil {
			return err
		}
		return tx.Contributors().Create(ctx, &model.Contributor{UserID: alice.ID, ProjectID: project.ID})
	})
	if err != nil {
		log.Fatalf("Failed to create project: %v", err)
	}

	for _, u := range []*model.User{bob, carol} {
		if err := store.Contributors().Create(ctx, &model.Contributor{UserID: u.ID, ProjectID: project.ID}); err != nil {
			log.Fatalf("Failed to add contributor %s: %v", u.Username, err)
		}
	}
	log.Printf("Created project %q with 3 contributors", project.Title)

	issues := []*model.Issue{
		{
			Title:       "Login returns 500 on empty body",
			Description: "POST /api/login without a body panics instead of returning 400.",
			Tag:         model.IssueTagBug,
			Priority:    model.IssuePriorityHigh,
			Status:      model.IssueStatusToDo,
			ProjectID:   project.ID,
			AuthorID:    bob.ID,
			AssigneeID:  &carol.ID,
		},
		{
			Title:       "Add pagination to issue listing",
			Description: "Large projects need paged issue listings.",
			Tag:         model.IssueTagFeature,
			Priority:    model.IssuePriorityMedium,
			Status:      model.IssueStatusToDo,
			ProjectID:   project.ID,
			AuthorID:    alice.ID,
		},
	}
	for _, issue := range issues {
		if err := store.Issues().Create(ctx, issue); err != nil {
			log.Fatalf("Failed to create issue %q: %v", issue.Title, err)
		}
	}
	log.Printf("Created %d issues", len(issues))

	comment := &model.Comment{
		Description: "Reproduced on main, looking into the bind error handling.",
		IssueID:     issues[0].ID,
		AuthorID:    carol.ID,
	}
	if err := store.Comments().Create(ctx, comment); err != nil {
		log.Fatalf("Failed to create comment: %v", err)
	}
	log.Println("Created 1 comment")

	log.Println("Seed completed")
}
