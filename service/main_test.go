// service/main_test.go
package service

import (
	"expense-tracker/logger"
	"io"
	"os"
	"testing"
)

// TestMain initializes the logger before any test in this package runs.
func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}
