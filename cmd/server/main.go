package main

import (
	"os"

	"ui-architect/backend/internal/app"
)

// @title        UI Architect API
// @version      1.0
// @description  Generates Roblox UI libraries in Luau from a chat conversation and a set of generation settings.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
