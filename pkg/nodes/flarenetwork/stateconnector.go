package flarenetwork

import (
	"net/http"

	"github.com/flareops/flarenode/pkg/flare"
)

var stateConnector = Resource{
	Name:        ResourceStateConnector,
	DisplayName: "State Connector",
	Auth:        flare.AuthBearer,
	Operations: []Operation{
		{
			Name:        "getAttestations",
			DisplayName: "Get Attestations",
			Description: "List attestations, optionally filtered by round and status",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("roundId", "Round ID", "Filter attestations by round ID", false),
				{
					Name:        "status",
					DisplayName: "Status",
					Kind:        KindOptions,
					Default:     "",
					Options:     []string{"pending", "confirmed", "rejected"},
					Description: "Filter attestations by status",
				},
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "roundId")
				v.addString(&q, "status")

				return getWithQuery("/state-connector/attestations", q)
			},
		},
		{
			Name:        "getAttestationById",
			DisplayName: "Get Attestation by ID",
			Description: "Get a single attestation",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("attestationId", "Attestation ID", "The unique identifier of the attestation", true),
			},
			Build: func(v *Values) flare.Request {
				return get(flare.PathJoin("/state-connector/attestations/", v.String("attestationId")))
			},
		},
		{
			Name:        "submitAttestation",
			DisplayName: "Submit Attestation",
			Description: "Submit an attestation request",
			Method:      http.MethodPost,
			Params: []Param{
				stringParam("attestationType", "Attestation Type", "The type of attestation to submit", true),
				stringParam("sourceId", "Source ID", "The source identifier for the attestation", true),
				{
					Name:        "attestationData",
					DisplayName: "Attestation Data",
					Kind:        KindJSON,
					Required:    true,
					Default:     "{}",
					Description: "The attestation data payload as JSON",
				},
			},
			Build: func(v *Values) flare.Request {
				return post("/state-connector/attestations", submitAttestationBody{
					AttestationType: v.String("attestationType"),
					SourceID:        v.String("sourceId"),
					Data:            v.JSON("attestationData"),
				})
			},
		},
		{
			Name:        "getAttestationRounds",
			DisplayName: "Get Attestation Rounds",
			Description: "Get attestation round information",
			Method:      http.MethodGet,
			Params: []Param{
				stringParam("roundId", "Round ID", "Specific round ID to get information for", false),
			},
			Build: func(v *Values) flare.Request {
				var q flare.Query

				v.addString(&q, "roundId")

				return getWithQuery("/state-connector/rounds", q)
			},
		},
		{
			Name:        "getAttestationProviders",
			DisplayName: "Get Attestation Providers",
			Description: "Get list of attestation providers",
			Method:      http.MethodGet,
			Build: func(*Values) flare.Request {
				return get("/state-connector/providers")
			},
		},
		{
			Name:        "getSupportedTypes",
			DisplayName: "Get Supported Types",
			Description: "Get supported attestation types",
			Method:      http.MethodGet,
			Build: func(*Values) flare.Request {
				return get("/state-connector/types")
			},
		},
	},
}

type submitAttestationBody struct {
	AttestationType string `json:"attestationType"`
	SourceID        string `json:"sourceId"`
	Data            any    `json:"data"`
}
