// cmd/main.go
package main

import (
	"expense-tracker/app"
)

// @title           Expense Tracker API
// @version         1.0
// @description     Records income and expense entries and serves the history grouped by day.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
