package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"leny-backend/conn"
	"leny-backend/engine"
	"leny-backend/history"
	"leny-backend/knowledgeapi"
	"leny-backend/llm"
	"leny-backend/migrations"
	"leny-backend/query"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	primaryModel := envOr("PRIMARY_MODEL", "gpt-4o-mini")
	fallbackModel := envOr("FALLBACK_MODEL", "gpt-4o")

	opts := engine.Options{
		PrimaryModel:  primaryModel,
		FallbackModel: fallbackModel,
	}
	if c := llm.NewClient(primaryModel); c != nil {
		opts.Primary = c
	} else {
		log.Printf("[main] primary model disabled, responses use the knowledge base")
	}
	if c := llm.NewClient(fallbackModel); c != nil {
		opts.Fallback = c
	}

	configs, err := engine.LoadAgentConfigs(envOr("AGENT_CONFIG_FILE", "agent_configs.yaml"))
	if err != nil {
		log.Fatalf("[main] agent configs: %v", err)
	}
	opts.AgentConfigs = configs

	eng := engine.New(opts)

	// History storage is optional; without a database the API still serves
	// queries, only /stats is unavailable.
	var repo *history.Repository
	if os.Getenv("DB_HOST") != "" {
		db, err := conn.NewMySQL()
		if err != nil {
			log.Printf("[main] mysql unavailable, history disabled: %v", err)
		} else {
			migrations.Init(db)
			if err := migrations.Migrate(); err != nil {
				log.Fatalf("[main] migrate: %v", err)
			}
			repo = history.NewRepository(db)
		}
	}

	r := gin.Default()
	query.NewHandler(eng, repo).RegisterRoutes(r)
	knowledgeapi.NewHandler().RegisterRoutes(r)
	history.NewHandler(repo).RegisterRoutes(r)

	r.Run(":" + envOr("PORT", "8080"))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
