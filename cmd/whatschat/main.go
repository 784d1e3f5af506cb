package main

import (
	"github.com/joho/godotenv"
	"github.com/matheus3301/whatschat/internal/app"
	"go.uber.org/fx"
)

func main() {
	// Optional .env for the API key; absence is fine.
	_ = godotenv.Load()

	fx.New(
		app.Module(),
		fx.NopLogger,
	).Run()
}
