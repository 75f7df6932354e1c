// Package config loads the application configuration.
//
// Configuration is sourced from environment variables with a .env overlay
// (godotenv), bound through Viper. Defaults come from `default` struct tags
// discovered by reflection, so every key is registered for AutomaticEnv and
// SERVER_PORT style variables map onto nested config sections.
package config
