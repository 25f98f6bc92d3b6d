// cmd/main.go
package main

import (
	"scoring-api/app"
)

// @title           Scoring API
// @version         1.0
// @description     JSON-over-HTTP scoring service with digest authentication.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
