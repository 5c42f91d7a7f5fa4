// Command adminctl creates an administrator account directly in the
// database. It is meant for bootstrapping a fresh installation, before
// any user exists who could be promoted through the API.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/hrostami/taskkeeper/internal/flagx"
	"github.com/hrostami/taskkeeper/internal/server/auth"
	"github.com/hrostami/taskkeeper/internal/server/config"
	"github.com/hrostami/taskkeeper/internal/server/models"
	"github.com/hrostami/taskkeeper/internal/server/repositories/repomanager"
	"github.com/hrostami/taskkeeper/internal/server/services"
)

func getPassword() (string, error) {
	fmt.Print("Enter password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("Repeat password: ")
	pw2, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(pw) != string(pw2) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(pw), nil
}

func main() {

	// Config flags (-d, -s, ...) are parsed separately by LoadConfig,
	// so only the flags this command owns are taken from os.Args here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-e", "-f", "-l"})

	fs := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	username := fs.String("u", "", "username of the new administrator")
	email := fs.String("e", "", "email of the new administrator")
	firstName := fs.String("f", "", "first name")
	lastName := fs.String("l", "", "last name")

	if err := fs.Parse(args); err != nil {
		log.Fatalf("%v", err)
	}

	if *username == "" {
		fs.Usage()
		log.Fatal("username is required")
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	password, err := getPassword()
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	us := services.NewUserService(db, m, cfg)

	user := &models.User{
		Username:  *username,
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      auth.RoleAdmin,
	}

	created, err := us.Register(ctx, user, password)
	if err != nil {
		log.Fatalf("cannot create administrator: %v", err)
	}

	fmt.Printf("administrator %q created (id=%d)\n", created.Username, created.ID)
}
