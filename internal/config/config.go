package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Server holds everything cmd/server needs. Values come from the
// environment with sensible defaults; a .env file is honoured when present.
type Server struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	RabbitURL     string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
}

// Console holds the settings for the admin console binary.
type Console struct {
	BaseURL     string
	SocketURL   string
	SessionFile string
}

func LoadServer() Server {
	_ = godotenv.Load()

	return Server{
		Addr:          getenv("ADMIN_ADDR", ":5010"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret"),
		RabbitURL:     os.Getenv("RABBITMQ_URL"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@printshop.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func LoadConsole() Console {
	_ = godotenv.Load()

	return Console{
		BaseURL:     getenv("ADMIN_API_URL", "http://localhost:5010/api"),
		SocketURL:   getenv("ADMIN_SOCKET_URL", "ws://localhost:5010/ws"),
		SessionFile: getenv("ADMIN_SESSION_FILE", defaultSessionFile()),
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".printshop-session.json"
	}
	return home + "/.printshop-session.json"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
