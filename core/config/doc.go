// Package config loads application configuration from the environment.
//
// Configuration is assembled from three layers, lowest precedence first:
//
//  1. Struct tag defaults (`default:"..."`) on each section's Config struct.
//  2. A .env file in the working directory, loaded via godotenv.
//  3. Process environment variables, mapped to nested keys by replacing
//     underscores (DATABASE_PATH -> database.path).
//
// Command-line flags override configuration where both exist (CSV source,
// column names, location); that wiring lives in the cmd package.
package config
