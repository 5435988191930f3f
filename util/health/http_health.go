package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dymensionxyz/kaspa-validator/util"
)

// CheckHTTPServer returns a check that passes while address answers GET healthPath with a 2xx.
func CheckHTTPServer(address string, healthPath string) func(context.Context, bool) (int, string, error) {
	client := &http.Client{
		Timeout: 2 * time.Second,
	}

	target := strings.TrimSuffix(address, "/") + "/" + strings.TrimPrefix(healthPath, "/")

	return func(ctx context.Context, _ bool) (int, string, error) {
		if _, err := util.DoHTTPRequest(ctx, client, util.HTTPRequest{URL: target}); err != nil {
			return http.StatusServiceUnavailable, fmt.Sprintf("HTTP server at %s is not healthy", address), err
		}

		return http.StatusOK, fmt.Sprintf("HTTP server at %s is listening and accepting requests", address), nil
	}
}
