package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
	"github/chapool/mobile-wallet/internal/util"
)

const healthyTimeout = 5 * time.Second

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns an human readable string about the current service status.
// In addition to readiness probes, it checks that the RPC node of the
// selected network answers with the expected chain ID.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), healthyTimeout)
		defer cancel()

		str, errs := ProbeRPC(ctx, s)
		if len(errs) > 0 {
			util.LogFromContext(ctx).Warn().Errs("errs", errs).Msg("Health probe failed")
			return c.String(statusNotReady, strings.Join(str, "\n"))
		}

		return c.String(http.StatusOK, strings.Join(str, "\n"))
	}
}

// ProbeRPC checks the RPC node of the selected network and returns a line per check.
func ProbeRPC(ctx context.Context, s *api.Server) ([]string, []error) {
	network := s.Networks.Selected()

	backend, err := s.Backends.Backend(network.ChainID)
	if err != nil {
		return []string{fmt.Sprintf("RPC %s: connect error", network.Name)}, []error{err}
	}

	start := time.Now()
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return []string{fmt.Sprintf("RPC %s: chain id error", network.Name)}, []error{err}
	}
	if chainID.Int64() != network.ChainID {
		err = fmt.Errorf("node reports chain id %s, expected %d", chainID, network.ChainID)
		return []string{fmt.Sprintf("RPC %s: wrong chain", network.Name)}, []error{err}
	}

	return []string{fmt.Sprintf("RPC %s: OK in %s", network.Name, time.Since(start))}, nil
}
