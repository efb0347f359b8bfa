package flarenetwork

import (
	"net/http"

	"github.com/flareops/flarenode/pkg/flare"
)

var networkInfo = Resource{
	Name:        ResourceNetworkInfo,
	DisplayName: "Network Info",
	Auth:        flare.AuthAPIKeyHeader,
	Operations: []Operation{
		{
			Name:        "getNetworkInfo",
			DisplayName: "Get Network Info",
			Description: "Get general network information",
			Method:      http.MethodGet,
			Build: func(*Values) flare.Request {
				return get("/network/info")
			},
		},
		{
			Name:        "getBlocks",
			DisplayName: "Get Blocks",
			Description: "List blocks",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("blockNumber", "Block Number", "Specific block number to query", false),
				numberParam("limit", "Limit", "Maximum number of results to return", false, 10),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "blockNumber")
				v.addNumber(&q, "limit")

				return getWithQuery("/network/blocks", q)
			},
		},
		{
			Name:        "getBlockByHash",
			DisplayName: "Get Block by Hash",
			Description: "Get a block by its hash",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("blockHash", "Block Hash", "The block hash to query", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/network/blocks/", v.String("blockHash")))
			},
		},
		{
			Name:        "getTransactions",
			DisplayName: "Get Transactions",
			Description: "List transactions",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "Filter transactions by address", false),
				stringParam("blockNumber", "Block Number", "Specific block number to query", false),
				numberParam("limit", "Limit", "Maximum number of results to return", false, 10),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "address")
				v.addString(&q, "blockNumber")
				v.addNumber(&q, "limit")

				return getWithQuery("/network/transactions", q)
			},
		},
		{
			Name:        "getTransactionByHash",
			DisplayName: "Get Transaction by Hash",
			Description: "Get a transaction by its hash",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("txHash", "Transaction Hash", "The transaction hash to query", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/network/transactions/", v.String("txHash")))
			},
		},
		{
			Name:        "getAddressBalance",
			DisplayName: "Get Address Balance",
			Description: "Get the balance of an address",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The wallet address to query", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/network/addresses/", v.String("address"), "/balance"))
			},
		},
		{
			Name:        "getAddressTransactions",
			DisplayName: "Get Address Transactions",
			Description: "List transactions of an address",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The wallet address to query", true),
				numberParam("limit", "Limit", "Maximum number of results to return", false, 10),
				numberParam("offset", "Offset", "Number of results to skip", false, 0),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addNumber(&q, "limit")
				v.addNumber(&q, "offset")

				return getWithQuery(flare.PathJoin("/network/addresses/", v.String("address"), "/transactions"), q)
			},
		},
	},
}
