package config

import "log"

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}

// MustStoreURL checks that the DSN required by the selected store driver is set.
func (c Config) MustStoreURL() {
	switch c.StoreDriver {
	case "mongo":
		MustNonEmpty(c.MongoURL, "MONGO_URL")
	case "postgres", "sqlite":
		MustNonEmpty(c.DatabaseURL, "DATABASE_URL")
	default:
		log.Fatalf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
}
