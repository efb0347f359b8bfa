package flarenetwork

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flareops/flarenode/pkg/flare"
	"github.com/flareops/flarenode/pkg/mocks"
	"github.com/flareops/flarenode/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatch_GetCurrentPrices(t *testing.T) {
	doer := &mocks.MockDoer{}
	payload := map[string]any{"prices": []any{}}
	requests := recordRequests(doer, payload)

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourcePriceFeeds,
		operation: "getCurrentPrices",
		params:    map[string]any{"symbols": "FLR,SGB", "timestamp": 0},
		n:         1,
	})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, payload, records[0].JSON)
	assert.Equal(t, 0, records[0].PairedItem.Item)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, flare.AuthAPIKeyHeader, req.Auth)
	assert.Equal(t, "https://flare-api.flare.network/v1/ftso/prices/current?symbols=FLR%2CSGB", req.URL(testCreds.BaseURL))
	assert.Nil(t, req.Body)

	doer.AssertExpectations(t)
}

func TestDispatch_EstimateRewards(t *testing.T) {
	doer := &mocks.MockDoer{}
	requests := recordRequests(doer, map[string]any{"estimated": "12"})

	d := NewDispatcher(doer, discardLogger())
	_, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceDelegation,
		operation: "estimateRewards",
		params: map[string]any{
			"amount":    "10000",
			"providers": "0xabc, 0xdef ,0x123",
			"duration":  30,
		},
		n: 1,
	})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/delegation/estimate-rewards", req.Path)
	assert.Equal(t, flare.AuthBearer, req.Auth)
	assert.JSONEq(t, `{"amount":"10000","providers":["0xabc","0xdef","0x123"],"duration":30}`, bodyJSON(t, req.Body))
}

func TestDispatch_GetAttestations(t *testing.T) {
	doer := &mocks.MockDoer{}
	requests := recordRequests(doer, []any{})

	d := NewDispatcher(doer, discardLogger())
	_, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceStateConnector,
		operation: "getAttestations",
		params:    map[string]any{"roundId": "12345", "status": "confirmed"},
		n:         1,
	})
	require.NoError(t, err)

	req := (*requests)[0]
	assert.Equal(t, "/state-connector/attestations", req.Path)
	assert.Equal(t, "roundId=12345&status=confirmed", req.Query.Encode())
	assert.Equal(t, flare.AuthBearer, req.Auth)
}

func TestDispatch_OneRecordPerItemInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 3, 10} {
		doer := &mocks.MockDoer{}
		requests := recordRequests(doer, map[string]any{"ok": true})

		d := NewDispatcher(doer, discardLogger())
		records, err := d.Dispatch(context.Background(), &stubBatch{
			resource:  ResourceNetworkInfo,
			operation: "getNetworkInfo",
			n:         n,
		})
		require.NoError(t, err)

		require.Len(t, records, n)
		assert.Len(t, *requests, n)

		for i, r := range records {
			assert.Equal(t, i, r.PairedItem.Item)
		}
	}
}

func TestDispatch_EmptyBatchSkipsCredentials(t *testing.T) {
	doer := &mocks.MockDoer{}

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourcePriceFeeds,
		operation: "getFtsoProviders",
		credsErr:  errors.New("no credentials"),
	})
	require.NoError(t, err)
	assert.Empty(t, records)
	doer.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_ContinueOnFail(t *testing.T) {
	doer := &mocks.MockDoer{}
	doer.On("Do", mock.Anything, mock.Anything, mock.MatchedBy(func(req flare.Request) bool {
		return req.Path == "/ftso/prices/BAD"
	})).Return(nil, errors.New("API Error"))
	doer.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(map[string]any{"price": 1.5}, nil)

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourcePriceFeeds,
		operation: "getPriceBySymbol",
		perItem: []map[string]any{
			{"symbol": "FLR"},
			{"symbol": "BAD"},
			{"symbol": "SGB"},
		},
		continueOnFail: true,
	})
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, map[string]any{"price": 1.5}, records[0].JSON)
	assert.Equal(t, map[string]any{"error": "API Error"}, records[1].JSON)
	assert.True(t, records[1].IsError())
	assert.Equal(t, 1, records[1].PairedItem.Item)
	assert.Equal(t, map[string]any{"price": 1.5}, records[2].JSON)
	assert.Equal(t, 2, records[2].PairedItem.Item)

	doer.AssertNumberOfCalls(t, "Do", 3)
}

func TestDispatch_ContinueOnFailUsesRemoteMessage(t *testing.T) {
	doer := &mocks.MockDoer{}
	doer.On("Do", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &flare.RemoteAPIError{StatusCode: http.StatusNotFound, Message: "agent not found"})

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:       ResourceSyntheticAssets,
		operation:      "getAgentDetails",
		params:         map[string]any{"address": "0xagent"},
		n:              1,
		continueOnFail: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []models.OutputRecord{models.ErrorRecord(0, "agent not found")}, records)
}

func TestDispatch_FailFast(t *testing.T) {
	doer := &mocks.MockDoer{}
	doer.On("Do", mock.Anything, mock.Anything, mock.MatchedBy(func(req flare.Request) bool {
		return req.Path == "/network/transactions/0xbad"
	})).Return(nil, &flare.TransportError{Op: "send request", Err: errors.New("connection refused")})
	doer.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(map[string]any{"hash": "ok"}, nil)

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceNetworkInfo,
		operation: "getTransactionByHash",
		perItem: []map[string]any{
			{"txHash": "0xgood"},
			{"txHash": "0xbad"},
			{"txHash": "0xnever"},
		},
	})
	require.Error(t, err)

	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 1, itemErr.Index)
	assert.True(t, flare.IsTransportError(err))
	assert.Equal(t, KindTransport, Classify(err))

	assert.Len(t, records, 1)
	doer.AssertNumberOfCalls(t, "Do", 2)
}

func TestDispatch_UnknownOperation(t *testing.T) {
	doer := &mocks.MockDoer{}

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:       ResourcePriceFeeds,
		operation:      "getEverything",
		n:              2,
		continueOnFail: true,
	})
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, IsConfigurationError(err))
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Equal(t, `unknown operation "getEverything" for resource "priceFeeds"`, err.Error())
	doer.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_UnsupportedResource(t *testing.T) {
	doer := &mocks.MockDoer{}

	d := NewDispatcher(doer, discardLogger())
	_, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  "ftsoPriceFeeds",
		operation: "getCurrentPrices",
		n:         1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedResource)
	assert.Equal(t, `the resource "ftsoPriceFeeds" is not supported`, err.Error())
}

func TestDispatch_ConfigurationCheckedBeforeCredentials(t *testing.T) {
	d := NewDispatcher(&mocks.MockDoer{}, discardLogger())
	_, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceDelegation,
		operation: "nope",
		n:         1,
		credsErr:  errors.New("no credentials"),
	})
	assert.True(t, IsConfigurationError(err))
}

func TestDispatch_CredentialErrors(t *testing.T) {
	d := NewDispatcher(&mocks.MockDoer{}, discardLogger())

	_, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceNetworkInfo,
		operation: "getNetworkInfo",
		n:         1,
		credsErr:  errors.New("no credentials"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get credentials")

	_, err = d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceNetworkInfo,
		operation: "getNetworkInfo",
		n:         1,
		creds:     flare.Credentials{APIKey: "k", BaseURL: "https://example.com"},
	})
	assert.ErrorIs(t, err, flare.ErrUnknownBaseURL)
}

func TestDispatch_AllowCustomBaseURL(t *testing.T) {
	doer := &mocks.MockDoer{}
	recordRequests(doer, map[string]any{})

	custom := flare.Credentials{APIKey: "k", BaseURL: "http://localhost:8080/v1"}

	d := NewDispatcher(doer, discardLogger(), AllowCustomBaseURL())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceNetworkInfo,
		operation: "getNetworkInfo",
		n:         1,
		creds:     custom,
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	doer.AssertCalled(t, "Do", mock.Anything, custom, mock.Anything)
}

func TestDispatch_MissingRequiredParameter(t *testing.T) {
	doer := &mocks.MockDoer{}

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(context.Background(), &stubBatch{
		resource:       ResourceDelegation,
		operation:      "getDelegatorInfo",
		n:              1,
		continueOnFail: true,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{"error": `parameter "address": missing required parameter`}, records[0].JSON)
	doer.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)

	_, err = d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceDelegation,
		operation: "getDelegatorInfo",
		n:         1,
	})
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Equal(t, KindTransport, Classify(err))
}

func TestDispatch_EmptyProvidersListIsMissing(t *testing.T) {
	doer := &mocks.MockDoer{}

	d := NewDispatcher(doer, discardLogger())
	_, err := d.Dispatch(context.Background(), &stubBatch{
		resource:  ResourceDelegation,
		operation: "estimateRewards",
		params:    map[string]any{"amount": "10000", "providers": []any{}},
		n:         1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Contains(t, err.Error(), `parameter "providers"`)
	doer.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_CanceledContext(t *testing.T) {
	doer := &mocks.MockDoer{}
	recordRequests(doer, map[string]any{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(doer, discardLogger())
	records, err := d.Dispatch(ctx, &stubBatch{
		resource:       ResourceNetworkInfo,
		operation:      "getNetworkInfo",
		n:              3,
		continueOnFail: true,
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, records)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindRemoteAPI, Classify(&ItemError{Err: &flare.RemoteAPIError{StatusCode: 500}}))
	assert.Equal(t, KindTransport, Classify(&flare.TransportError{Err: errors.New("eof")}))
	assert.Equal(t, KindTransport, Classify(errors.New("boom")))
}

// Every resource classifies a non-2xx answer as a remote API error, whether or
// not the body is structured JSON.
func TestDispatch_RemoteErrorPolicyIsUniformAcrossResources(t *testing.T) {
	selections := []struct {
		resource  string
		operation string
		params    map[string]any
	}{
		{ResourcePriceFeeds, "getFtsoProviders", nil},
		{ResourceDelegation, "getDelegationProviders", nil},
		{ResourceStateConnector, "getSupportedTypes", nil},
		{ResourceSyntheticAssets, "getCollateralInfo", map[string]any{"agent": "0xagent"}},
		{ResourceNetworkInfo, "getNetworkInfo", nil},
	}

	bodies := []struct {
		name    string
		body    string
		message string
	}{
		{"structured body", `{"message":"maintenance"}`, "maintenance"},
		{"plain body", "maintenance", "Service Unavailable"},
		{"empty body", "", "Service Unavailable"},
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, body.body)
		}))

		creds := flare.Credentials{APIKey: "test-key", BaseURL: server.URL}
		d := NewDispatcher(flare.NewClient(), discardLogger(), AllowCustomBaseURL())

		for _, sel := range selections {
			t.Run(body.name+"/"+sel.resource, func(t *testing.T) {
				records, err := d.Dispatch(context.Background(), &stubBatch{
					resource:       sel.resource,
					operation:      sel.operation,
					params:         sel.params,
					n:              1,
					creds:          creds,
					continueOnFail: true,
				})
				require.NoError(t, err)
				assert.Equal(t, []models.OutputRecord{models.ErrorRecord(0, body.message)}, records)

				_, err = d.Dispatch(context.Background(), &stubBatch{
					resource:  sel.resource,
					operation: sel.operation,
					params:    sel.params,
					n:         1,
					creds:     creds,
				})
				require.Error(t, err)
				assert.True(t, flare.IsRemoteAPIError(err))
				assert.Equal(t, KindRemoteAPI, Classify(err))
			})
		}

		server.Close()
	}
}
