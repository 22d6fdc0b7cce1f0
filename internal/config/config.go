package config

import "os"

// Config holds connection and server settings
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	Port      string
}

// Load reads connection settings from the environment
func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "salescalldb"),
		RedisAddr: getEnv("REDIS_URI", "localhost:6379"),
		Port:      getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
