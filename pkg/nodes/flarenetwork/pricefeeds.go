package flarenetwork

import (
	"net/http"

	"github.com/flareops/flarenode/pkg/flare"
)

var priceFeeds = Resource{
	Name:        ResourcePriceFeeds,
	DisplayName: "FTSO Price Feeds",
	Auth:        flare.AuthAPIKeyHeader,
	Operations: []Operation{
		{
			Name:        "getCurrentPrices",
			DisplayName: "Get Current Prices",
			Description: "Get current price data for all supported assets",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("symbols", "Symbols", "Comma-separated list of symbols to filter prices", false),
				numberParam("timestamp", "Timestamp", "Unix timestamp to get prices at a specific time", false, 0),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "symbols")
				v.addNumber(&q, "timestamp")

				return getWithQuery("/ftso/prices/current", q)
			},
		},
		{
			Name:        "getPriceBySymbol",
			DisplayName: "Get Price By Symbol",
			Description: "Get current price for a specific symbol",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("symbol", "Symbol", "The symbol to get the price for (e.g. FLR, SGB, BTC)", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/ftso/prices/", v.String("symbol")))
			},
		},
		{
			Name:        "getPriceHistory",
			DisplayName: "Get Price History",
			Description: "Get historical price data",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("symbol", "Symbol", "The symbol to get historical prices for", true),
				numberParam("startTime", "Start Time", "Start timestamp for historical data", false, 0),
				numberParam("endTime", "End Time", "End timestamp for historical data", false, 0),
				{
					Name:        "interval",
					DisplayName: "Interval",
					Kind:        KindOptions,
					Default:     "1h",
					Options:     []string{"1m", "5m", "15m", "1h", "4h", "1d"},
					Description: "Time interval for historical data",
				},
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				q.Add("symbol", v.String("symbol"))
				q.Add("startTime", formatNumber(v.Number("startTime")))
				q.Add("endTime", formatNumber(v.Number("endTime")))
				v.addString(&q, "interval")

				return getWithQuery("/ftso/prices/history", q)
			},
		},
		{
			Name:        "getFtsoProviders",
			DisplayName: "Get FTSO Providers",
			Description: "Get list of FTSO data providers",
			Method:      http.MethodGet,
			Build: func(*Values) flare.Request {
				return get("/ftso/providers")
			},
		},
		{
			Name:        "getProviderPrices",
			DisplayName: "Get Provider Prices",
			Description: "Get prices submitted by a specific provider",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Provider Address", "The provider address to get prices from", true),
				stringParam("symbol", "Symbol", "Filter prices by symbol", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "symbol")

				return getWithQuery(flare.PathJoin("/ftso/providers/", v.String("address"), "/prices"), q)
			},
		},
		{
			Name:        "getFtsoRewards",
			DisplayName: "Get FTSO Rewards",
			Description: "Get FTSO reward information",
			Method:      http.MethodGet,
			Params: []Param{
				numberParam("rewardEpoch", "Reward Epoch", "Specific reward epoch to get rewards for", false, 0),
				stringParam("provider", "Provider", "Filter rewards by provider address", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addNumber(&q, "rewardEpoch")
				v.addString(&q, "provider")

				return getWithQuery("/ftso/rewards", q)
			},
		},
	},
}
