package settings

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ordishs/gocore"
)

func getString(key, defaultValue string) string {
	value, found := gocore.Config().Get(key)
	if !found {
		return defaultValue
	}

	return value
}

// getMultiString splits a comma separated value, dropping empty entries.
func getMultiString(key, defaultValue string) []string {
	value := getString(key, defaultValue)

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}

	return result
}

func getInt(key string, defaultValue int) int {
	value, found := gocore.Config().GetInt(key)
	if !found {
		return defaultValue
	}

	return value
}

func getUint32(key string, defaultValue uint32) uint32 {
	value := getString(key, "")
	if value == "" {
		return defaultValue
	}

	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return defaultValue
	}

	return uint32(v)
}

// getDurationMillis reads an integer number of milliseconds.
func getDurationMillis(key string, defaultValue time.Duration) time.Duration {
	value, found := gocore.Config().GetInt(key)
	if !found {
		return defaultValue
	}

	return time.Duration(value) * time.Millisecond
}

func getURL(key, defaultValue string) *url.URL {
	value := getString(key, defaultValue)
	if value == "" {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return nil
	}

	return u
}

func getBool(key string, defaultValue bool) bool {
	return gocore.Config().GetBool(key, defaultValue)
}
