package confs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings when needed.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		return v
	}
	return "0.0.0.0:3536"
}

// BcryptCost returns the configured password hashing work factor.
// Out-of-range or missing values fall back to the default of 10.
func BcryptCost() int {
	v := os.Getenv("PASSWORD_HASH_COST")
	if v == "" {
		return 10
	}
	cost, err := strconv.Atoi(v)
	if err != nil || cost < 4 || cost > 31 {
		log.Printf("warning: invalid PASSWORD_HASH_COST %q, using default", v)
		return 10
	}
	return cost
}

// ActivityBufferSize returns how many recent catalog events are kept in memory.
func ActivityBufferSize() int {
	v := os.Getenv("ACTIVITY_BUFFER_SIZE")
	if v == "" {
		return 256
	}
	size, err := strconv.Atoi(v)
	if err != nil || size <= 0 {
		log.Printf("warning: invalid ACTIVITY_BUFFER_SIZE %q, using default", v)
		return 256
	}
	return size
}
