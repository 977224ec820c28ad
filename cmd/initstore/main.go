// Command initstore seeds an empty document file for the server. The store
// itself never creates or repairs its file; this tool plays the
// first-run-initializer role so the server can refuse to guess.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/questlog/questlog/internal/infrastructure/db/jsonstore"
)

func main() {
	path := flag.String("path", "data/db.json", "where to write the document file")
	flag.Parse()

	if _, err := os.Stat(*path); err == nil {
		log.Fatalf("refusing to overwrite existing store at %s", *path)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("stat %s: %v", *path, err)
	}

	if err := os.MkdirAll(filepath.Dir(*path), 0o700); err != nil {
		log.Fatalf("create store directory: %v", err)
	}

	if err := jsonstore.New(*path).Save(jsonstore.NewDocument()); err != nil {
		log.Fatalf("write empty document: %v", err)
	}

	log.Printf("empty store created at %s", *path)
}
