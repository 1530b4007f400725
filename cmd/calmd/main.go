package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"calmcollective/internal/content"
	"calmcollective/internal/db"
	"calmcollective/internal/journal"
	"calmcollective/internal/server"
	"calmcollective/internal/workspace"
)

func main() {
	host := flag.String("host", envDefault("HOST", "0.0.0.0"), "listen host")
	port := flag.Int("port", envDefaultInt("PORT", 5050), "listen port")
	base := flag.String("base", "", "workspace directory (default $HOME/CalmCollective)")
	flag.Parse()

	root, err := ensureWorkspace(*base)
	if err != nil {
		log.Fatalf("workspace initialization failed: %v", err)
	}
	log.Printf("workspace ready at %s", root)

	store, err := db.OpenStore(workspace.EntriesDBPath(root))
	if err != nil {
		log.Fatalf("open entry store: %v", err)
	}
	defer store.Close()

	pools := content.NewPools(workspace.AssetsDir(root))
	svc := journal.New(store, pools)

	srv, err := server.New(server.Config{
		Host:         *host,
		Port:         *port,
		SecretKey:    []byte(envDefault("SECRET_KEY", "dev-key-change-me")),
		CSRFEnabled:  envDefault("CSRF_ENABLED", "1") != "0",
		SettingsPath: workspace.SettingsPath(root),
	}, svc, store, pools)
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func ensureWorkspace(base string) (string, error) {
	if base != "" {
		return workspace.EnsureAt(base)
	}
	return workspace.EnsureDefault()
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
