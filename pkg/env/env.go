package env

import "os"

// Get reads an environment variable with the app prefix preferred over the
// bare name, falling back when neither is set. Config proper goes through
// envconfig; this covers ad-hoc reads like the log format.
func Get(key, fallback string) string {
	for _, k := range []string{"STOREFRONT_" + key, key} {
		if val := os.Getenv(k); val != "" {
			return val
		}
	}
	return fallback
}
