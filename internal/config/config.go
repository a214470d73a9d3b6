package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Domyślne wartości konfiguracji
const (
	DefaultHost = "localhost"
	DefaultPort = 9000
)

// Config zawiera ustawienia serwera
type Config struct {
	Host        string
	Port        int
	CORSOrigins []string
	SeedFile    string
	LogLevel    slog.Level
}

// Addr zwraca adres nasłuchiwania w postaci host:port
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load wczytuje plik .env (jeśli istnieje) i zmienne środowiskowe
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("brak pliku .env - używam zmiennych systemowych", "error", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv buduje konfigurację z podanej funkcji odczytu zmiennych
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Host:        DefaultHost,
		Port:        DefaultPort,
		CORSOrigins: []string{"*"},
		SeedFile:    getenv("SEED_FILE"),
		LogLevel:    slog.LevelInfo,
	}

	if host := getenv("HOST"); host != "" {
		cfg.Host = host
	}

	if port := getenv("PORT"); port != "" {
		p, err := ParsePort(port)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = p
	}

	if origins := getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("nieprawidłowy LOG_LEVEL %q: %w", level, err)
		}
	}

	return cfg, nil
}

// ParsePort sprawdza, czy port mieści się w zakresie 1-65535
func ParsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("nieprawidłowy port %q", s)
	}
	return p, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
