package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	Init()

	t.Run("json debug", func(t *testing.T) {
		err := Configure("debug", "json")
		assert.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
	})

	t.Run("text warn", func(t *testing.T) {
		err := Configure("warn", "TEXT")
		assert.NoError(t, err)
		assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, Configure("loud", "text"))
	})

	t.Run("invalid format", func(t *testing.T) {
		assert.Error(t, Configure("info", "xml"))
	})
}
