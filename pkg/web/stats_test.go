package web_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/flareops/flarenode/pkg/channels/gochannel"
	"github.com/flareops/flarenode/pkg/eventbus"
	"github.com/flareops/flarenode/pkg/events"
	"github.com/flareops/flarenode/pkg/services"
	"github.com/flareops/flarenode/pkg/testutil"
	"github.com/flareops/flarenode/pkg/web"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler(t *testing.T) {
	pub, sub, err := gochannel.CreateChannel(watermill.NopLogger{})
	require.NoError(t, err)

	bus := eventbus.NewWatermillEventBus(pub, sub)
	t.Cleanup(func() { _ = bus.Close() })

	stats := services.NewStats(testutil.DiscardLogger())
	require.NoError(t, stats.Register(bus))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, bus.Subscribe(ctx))

	app := fiber.New()
	app.Get("/stats", web.NewStatsHandler(stats))

	require.NoError(t, bus.Publish(ctx, "exec-1", events.NodeExecutionFailed{
		BaseEvent: events.NewBaseEvent(events.NodeExecutionFailedEvent, ""),
		Resource:  "stateConnector",
		Operation: "getAttestations",
		ErrorKind: "transport",
		Error:     "item 0: timeout",
	}))

	var response web.StatsResponse

	assert.Eventually(t, func() bool {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stats", nil))
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}

		response = web.StatsResponse{}
		if err := json.Unmarshal(body, &response); err != nil {
			return false
		}

		return len(response.Operations) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.Len(t, response.Operations, 1)
	assert.Equal(t, "getAttestations", response.Operations[0].Operation)
	assert.Equal(t, 1, response.Operations[0].FailedExecutions)
	assert.Equal(t, "transport", response.Operations[0].LastErrorKind)
}
