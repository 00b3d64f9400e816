package main

import (
	"flag"
	"log"

	"github.com/pablozramirez73/questionari-webapp/internal/config"
	"github.com/pablozramirez73/questionari-webapp/internal/services"
	"github.com/pablozramirez73/questionari-webapp/internal/store"
	"github.com/pablozramirez73/questionari-webapp/internal/tui"
)

func main() {
	memory := flag.Bool("memory", false, "use a throwaway in-memory store instead of the database file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var st store.Store
	if *memory {
		st = store.NewMemory()
	} else {
		sq, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalf("failed to open store at %s: %v", cfg.DBPath, err)
		}
		st = sq
	}
	defer func() { _ = st.Close() }()

	session := tui.NewSession(
		tui.NewSurveyDriver(),
		services.NewQuestionnaireService(st),
		services.NewEditorService(),
		services.NewAnswerService(),
		cfg.NoticeTTL,
	)
	if err := session.Run(); err != nil {
		log.Fatalf("session error: %v", err)
	}
}
