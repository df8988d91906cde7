// create-group provisions a post group. Groups are administrator-managed;
// there is no web flow for creating or editing them.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/quill-dev/quill/internal/config"
	"github.com/quill-dev/quill/internal/storage/pg"
)

func main() {
	var configFolder, title, slug, description string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&title, "title", "", "group title")
	flag.StringVar(&slug, "slug", "", "unique slug used in /group/{slug}/ URLs")
	flag.StringVar(&description, "description", "", "group description")
	flag.Parse()

	if title == "" || slug == "" {
		log.Fatal("both -title and -slug are required")
	}

	cfg := config.MustLoad(configFolder)
	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to storage: %v", err)
	}
	defer storage.Cleanup()

	group, err := storage.CreateGroup(title, slug, description)
	if err != nil {
		log.Fatalf("failed to create group: %v", err)
	}

	fmt.Printf("created group %s (/group/%s/)\n", group.Title, group.Slug)
}
