package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedUsers := []struct {
			Name        string
			Email       string
			Phone       string
			Role        string
			IsSuperuser bool
		}{
			{"Sohail Admin", "sohail@mail.com", "+923001000001", "Admin", true},
			{"Ayesha Supervisor", "ayesha@mail.com", "+923001000002", "Supervisor", false},
			{"Bilal Employee", "bilal@mail.com", "+923001000003", "Employee", false},
			{"Hina Compliance", "hina@mail.com", "+923001000004", "Compliance", false},
		}

		for _, u := range seedUsers {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM users WHERE email = $1", u.Email).Scan(&exists); err == nil {
				fmt.Printf("user %s already exists; skipping\n", u.Email)
				continue
			}

			_, err := db.Exec(
				"INSERT INTO users (name, email, phone_number, role, password_hash, is_active, is_superuser, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, true, $6, now(), now())",
				u.Name, u.Email, u.Phone, u.Role, string(hash), u.IsSuperuser,
			)
			if err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded %s user: %s\n", u.Role, u.Email)
		}
	},
}
