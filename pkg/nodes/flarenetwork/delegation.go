package flarenetwork

import (
	"net/http"

	"github.com/flareops/flarenode/pkg/flare"
)

var delegation = Resource{
	Name:        ResourceDelegation,
	DisplayName: "Delegation",
	Auth:        flare.AuthBearer,
	Operations: []Operation{
		{
			Name:        "getDelegatorInfo",
			DisplayName: "Get Delegator Info",
			Description: "Get delegation information for an address",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The delegator address to get delegation info for", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/delegation/delegators/", v.String("address")))
			},
		},
		{
			Name:        "getDelegationProviders",
			DisplayName: "Get Delegation Providers",
			Description: "Get list of providers accepting delegations",
			Method:      http.MethodGet,
			Build: func(*Values) flare.Request {
				return get("/delegation/providers")
			},
		},
		{
			Name:        "getProviderDetails",
			DisplayName: "Get Provider Details",
			Description: "Get details of a delegation provider",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The provider address to get details for", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/delegation/providers/", v.String("address")))
			},
		},
		{
			Name:        "getDelegationRewards",
			DisplayName: "Get Delegation Rewards",
			Description: "Get delegation rewards for an address",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The delegator address to get rewards for", true),
				numberParam("epoch", "Epoch", "The epoch to get rewards for", false, 0),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addNumber(&q, "epoch")

				return getWithQuery(flare.PathJoin("/delegation/rewards/", v.String("address")), q)
			},
		},
		{
			Name:        "getDelegationHistory",
			DisplayName: "Get Delegation History",
			Description: "Get delegation history for an address",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("address", "Address", "The address to get delegation history for", true),
				numberParam("startEpoch", "Start Epoch", "The starting epoch for history", false, 0),
				numberParam("endEpoch", "End Epoch", "The ending epoch for history", false, 0),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addNumber(&q, "startEpoch")
				v.addNumber(&q, "endEpoch")

				return getWithQuery(flare.PathJoin("/delegation/history/", v.String("address")), q)
			},
		},
		{
			Name:        "estimateRewards",
			DisplayName: "Estimate Rewards",
			Description: "Estimate delegation rewards for an amount across providers",
			Method:      http.MethodPost,
			Params: []Param{
				stringParam("amount", "Amount", "The amount to delegate for reward estimation", true),
				{
					Name:        "providers",
					DisplayName: "Providers",
					Kind:        KindList,
					Required:    true,
					Default:     "",
					Description: "Comma-separated list of provider addresses",
				},
				numberParam("duration", "Duration", "Duration in epochs for reward estimation", false, 1),
			},
			Build: func(v *Values) flare.Request {
				return post("/delegation/estimate-rewards", estimateRewardsBody{
					Amount:    v.String("amount"),
					Providers: v.List("providers"),
					Duration:  v.Number("duration"),
				})
			},
		},
	},
}

type estimateRewardsBody struct {
	Amount    string   `json:"amount"`
	Providers []string `json:"providers"`
	Duration  float64  `json:"duration"`
}
