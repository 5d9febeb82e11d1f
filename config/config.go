package config

import (
	"github.com/joho/godotenv"
)

func InitializeConfig() error {
	godotenv.Load()

	NewLoggerService()
	if err := ConnectDatabase(); err != nil {
		return err
	}
	if err := NewCacheService(); err != nil {
		return err
	}
	if err := NewInfluxDB(); err != nil {
		return err
	}

	return nil
}
