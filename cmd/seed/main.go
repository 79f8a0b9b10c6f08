package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-diary-api/config"
	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/internal/container"
	"github.com/oksasatya/go-diary-api/pkg/helpers"
)

const (
	demoUsername = "demoUser"
	demoEmail    = "demo@diary.local"
	demoPassword = "password123"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.MailSendEnabled = false

	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to build container: %v", err)
	}
	defer c.Close()

	res, err := c.Auth.Register(ctx, application.RegisterInput{
		Username: demoUsername,
		Email:    demoEmail,
		Password: demoPassword,
	})
	switch {
	case errors.Is(err, application.ErrDuplicateUser):
		fmt.Printf("demo user already exists: email=%s\n", demoEmail)
		return
	case err != nil:
		logger.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", res.User.ID, demoEmail, demoUsername, demoPassword)

	title, content, mood := "Welcome to your diary", "This is your first entry. Edit or delete it any time.", "happy"
	entry, err := c.Diary.Create(ctx, res.User.ID, application.EntryInput{
		Title:   &title,
		Content: &content,
		Mood:    &mood,
		Tags:    []string{"welcome"},
	})
	if err != nil {
		logger.Fatalf("failed to seed entry: %v", err)
	}
	fmt.Printf("seeded entry: id=%s title=%q\n", entry.ID, entry.Title)
}
