package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Pkra99/persona-ai/internal/config"
	"github.com/Pkra99/persona-ai/internal/llm/openai"
	"github.com/Pkra99/persona-ai/internal/persona"
	"github.com/Pkra99/persona-ai/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gateway := openai.NewGateway(openai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.ProviderTimeout,
	})

	s := server.New(server.Options{
		Personas:     persona.Default(),
		Provider:     gateway,
		ClientOrigin: cfg.ClientOrigin,
		ServeStatic:  cfg.Production,
	})

	log.Fatal(s.Start(":" + cfg.Port))
}
