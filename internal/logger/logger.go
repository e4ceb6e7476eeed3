package logger

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Structured JSON logging shared by both binaries. The service name is set
// once at startup so server and console entries can be told apart.

var service = "printshop"

func SetService(name string) {
	if name != "" {
		service = name
	}
}

func Info(message string, fields map[string]interface{}) {
	logJSON("info", message, fields)
}

func Warn(message string, fields map[string]interface{}) {
	logJSON("warn", message, fields)
}

func Error(message string, err error, fields map[string]interface{}) {
	if err != nil {
		if fields == nil {
			fields = map[string]interface{}{}
		}
		fields["error"] = err.Error()
	}
	logJSON("error", message, fields)
}

func Fatal(message string, err error, fields map[string]interface{}) {
	Error(message, err, fields)
	os.Exit(1)
}

func logJSON(level string, message string, fields map[string]interface{}) {
	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     level,
		"service":   service,
		"message":   message,
	}
	for k, v := range fields {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	log.Println(string(b))
}
