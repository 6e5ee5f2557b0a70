// Файл: pkg/config/config.go
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

// StorageConfig - адреса коллекций внешнего сервиса хранения (mockapi).
// Каждая коллекция живет на собственном базовом URL; auth-коллекция
// существует на сервисе, но бэкендом не используется.
type StorageConfig struct {
	EquipmentURL   string
	StaffURL       string
	AssignmentsURL string
	Timeout        time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AuthConfig struct {
	AdminEmail    string
	AdminName     string
	AdminRole     string
	AdminPassword string
	SessionTTL    time.Duration
}

// AssignmentConfig - политика ведения журнала закреплений.
// Исходная версия системы при откреплении журнал не трогала вовсе,
// поэтому закрытие записи журнала вынесено в явный флаг.
type AssignmentConfig struct {
	CloseLedgerOnUnassign bool
}

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Assignment AssignmentConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Storage: StorageConfig{
			EquipmentURL:   getEnv("STORAGE_EQUIPMENT_URL", "https://692aadbb7615a15ff24d55f2.mockapi.io/api/equipment"),
			StaffURL:       getEnv("STORAGE_STAFF_URL", "https://692b2acc7615a15ff24eeb70.mockapi.io/api/staff"),
			AssignmentsURL: getEnv("STORAGE_ASSIGNMENTS_URL", "https://692b2acc7615a15ff24eeb70.mockapi.io/api/assignments"),
			Timeout:        getEnvDuration("STORAGE_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "9A4D2AD385B2BAA8DC78F558B548F"),
			AccessTokenTTL:  time.Hour * 24,
			RefreshTokenTTL: time.Hour * 24 * 30,
		},
		Auth: AuthConfig{
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@hospital.com"),
			AdminName:     getEnv("ADMIN_NAME", "Admin User"),
			AdminRole:     getEnv("ADMIN_ROLE", "Administrator"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "123456"),
			SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Assignment: AssignmentConfig{
			CloseLedgerOnUnassign: getEnv("ASSIGNMENT_CLOSE_LEDGER_ON_UNASSIGN", "false") == "true",
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
