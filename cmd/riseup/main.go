// filepath: cmd/riseup/main.go
package main

import (
	"riseup/internal/cli"

	// Import docs for Swagger
	_ "riseup/docs"
)

// @title RiseUp API
// @version 1.0.0
// @description Habit tracking server: streaks, daily trackers and a dashboard.
// @BasePath /api
// @schemes http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
