package repository

import (
	"expense-tracker/logger"
	"io"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}
