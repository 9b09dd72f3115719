// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with caarlos0/env tags. Load reads
// ./.env through godotenv first (existing variables win), parses the
// struct once per type and caches the result for the life of the process.
// Parse does the same without the cache and can take an explicit
// environment map for tests.
//
// Structs that implement Validator are checked right after parsing, so an
// incomplete deployment fails at startup instead of on the first request:
//
//	func (c TurnstileConfig) Validate() error {
//		if c.SecretKey == "" {
//			return errors.New("TURNSTILE_SECRET_KEY is required")
//		}
//		return nil
//	}
package config
