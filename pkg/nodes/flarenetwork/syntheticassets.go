package flarenetwork

import (
	"net/http"

	"github.com/flareops/flarenode/pkg/flare"
)

var syntheticAssets = Resource{
	Name:        ResourceSyntheticAssets,
	DisplayName: "FAssets",
	Auth:        flare.AuthBearer,
	Operations: []Operation{
		{
			Name:        "getFAssetAgents",
			DisplayName: "Get F-Asset Agents",
			Description: "List FAsset agents",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("fAssetType", "F-Asset Type", "The type of F-Asset to filter agents by", false),
				stringParam("status", "Status", "Filter by status", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "fAssetType")
				v.addString(&q, "status")

				return getWithQuery("/fassets/agents", q)
			},
		},
		{
			Name:        "getAgentDetails",
			DisplayName: "Get Agent Details",
			Description: "Get details of a FAsset agent",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The agent address to get details for", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/fassets/agents/", v.String("address")))
			},
		},
		{
			Name:        "getMintingRequests",
			DisplayName: "Get Minting Requests",
			Description: "List minting requests",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("status", "Status", "Filter by status", false),
				stringParam("agent", "Agent", "Filter by agent address", false),
				stringParam("user", "User", "Filter by user address", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "status")
				v.addString(&q, "agent")
				v.addString(&q, "user")

				return getWithQuery("/fassets/minting", q)
			},
		},
		{
			Name:        "createMintingRequest",
			DisplayName: "Create Minting Request",
			Description: "Create a minting request",
			Method:      http.MethodPost,
			Params: []Param{
				stringParam("amount", "Amount", "The amount for the request", true),
				stringParam("fAssetType", "F-Asset Type", "The type of F-Asset", true),
				stringParam("agent", "Agent", "The agent address for minting", true),
				stringParam("underlyingAddress", "Underlying Address", "The underlying blockchain address", true),
			},
			Build: func(v *Values) flare.Request {
				return post("/fassets/minting", mintingBody{
					Amount:            v.String("amount"),
					FAssetType:        v.String("fAssetType"),
					Agent:             v.String("agent"),
					UnderlyingAddress: v.String("underlyingAddress"),
				})
			},
		},
		{
			Name:        "getRedemptionRequests",
			DisplayName: "Get Redemption Requests",
			Description: "List redemption requests",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("status", "Status", "Filter by status", false),
				stringParam("user", "User", "Filter by user address", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "status")
				v.addString(&q, "user")

				return getWithQuery("/fassets/redemption", q)
			},
		},
		{
			Name:        "createRedemptionRequest",
			DisplayName: "Create Redemption Request",
			Description: "Create a redemption request",
			Method:      http.MethodPost,
			Params: []Param{
				stringParam("amount", "Amount", "The amount for the request", true),
				stringParam("fAssetType", "F-Asset Type", "The type of F-Asset", true),
				stringParam("underlyingAddress", "Underlying Address", "The underlying blockchain address", true),
			},
			Build: func(v *Values) flare.Request {
				return post("/fassets/redemption", redemptionBody{
					Amount:            v.String("amount"),
					FAssetType:        v.String("fAssetType"),
					UnderlyingAddress: v.String("underlyingAddress"),
				})
			},
		},
		{
			Name:        "getCollateralInfo",
			DisplayName: "Get Collateral Info",
			Description: "Get collateral information of an agent",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("agent", "Agent", "The agent address", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/fassets/collateral/", v.String("agent")))
			},
		},
		{
			Name:        "getLiquidations",
			DisplayName: "Get Liquidations",
			Description: "List liquidations",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("agent", "Agent", "Filter by agent address", false),
				stringParam("status", "Status", "Filter by status", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "agent")
				v.addString(&q, "status")

				return getWithQuery("/fassets/liquidations", q)
			},
		},
	},
}

type mintingBody struct {
	Amount            string `json:"amount"`
	FAssetType        string `json:"fAssetType"`
	Agent             string `json:"agent"`
	UnderlyingAddress string `json:"underlyingAddress"`
}

type redemptionBody struct {
	Amount            string `json:"amount"`
	FAssetType        string `json:"fAssetType"`
	UnderlyingAddress string `json:"underlyingAddress"`
}
