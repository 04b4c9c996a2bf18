package repository

// CacheRepository is the key-value capability behind the theme preference
// and the calculation cache.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
