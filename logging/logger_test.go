package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	// Verify it's a logrus.Entry with the component field
	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}

	// Singleton per component
	again := NewLogger("test-component")
	if again != logger {
		t.Error("Expected the same entry for a repeated component")
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	entry := logger.WithField("component", "scan")
	entry.Info("Probed repository")

	output := buf.String()

	if !strings.Contains(output, "[INFO]") {
		t.Errorf("Expected output to contain [INFO], got: %s", output)
	}
	if !strings.Contains(output, "scan") {
		t.Errorf("Expected output to contain the component name, got: %s", output)
	}
	if !strings.Contains(output, "Probed repository") {
		t.Errorf("Expected output to contain the message, got: %s", output)
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	t.Run("warn level is shortened", func(t *testing.T) {
		buf.Reset()
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})
		logger.Warn("careful")
		if !strings.Contains(buf.String(), "[WARN]") {
			t.Errorf("Expected [WARN], got: %s", buf.String())
		}
	})

	t.Run("timestamp disabled", func(t *testing.T) {
		buf.Reset()
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})
		logger.Info("no time")
		if strings.HasPrefix(buf.String(), "20") {
			t.Errorf("Expected no leading timestamp, got: %s", buf.String())
		}
	})

	t.Run("fields appended", func(t *testing.T) {
		buf.Reset()
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})
		logger.WithField("path", "/repo").Info("probe failed")
		if !strings.Contains(buf.String(), "path=/repo") {
			t.Errorf("Expected path field in output, got: %s", buf.String())
		}
	})
}
