package cache

import "strings"

const (
	GlobalKeyPrefix = "quizshow"
)

// GenerateCacheKey builds "quizshow:<service>:<objectType>:<identifier>".
// Optional paramsKey values are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}
