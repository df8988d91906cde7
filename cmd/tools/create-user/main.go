// create-user inserts a user with a bcrypt-hashed password. Registration has
// no web flow; accounts are provisioned with this tool.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/quill-dev/quill/internal/config"
	"github.com/quill-dev/quill/internal/storage/pg"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var configFolder, username, password string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&username, "username", "", "username for the new account")
	flag.StringVar(&password, "password", "", "password for the new account")
	flag.Parse()

	if username == "" || password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg := config.MustLoad(configFolder)
	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to storage: %v", err)
	}
	defer storage.Cleanup()

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	user, err := storage.CreateUser(username, string(passHash))
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	fmt.Printf("created user %s (id %d)\n", user.Username, user.Id)
}
