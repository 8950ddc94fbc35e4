package config

import "os"

type Config struct {
	MongoURL       string
	DBName         string
	Port           string
	AllowedOrigins string
	APIKey         string
	OpenAIKey      string
	OpenAIModel    string
}

func Load() *Config {
	return &Config{
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "fittrack"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		APIKey:         getEnv("API_KEY", ""),
		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
