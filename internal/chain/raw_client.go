package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"ethMintBot/internal/logging"
)

var (
	ErrFailedToMarshalRequest    = errors.New("failed to marshal request")
	ErrFailedToSendRequest       = errors.New("failed to send request")
	ErrUnexpectedStatusCode      = errors.New("unexpected status code")
	ErrFailedToReadResponse      = errors.New("failed to read response")
	ErrFailedToUnmarshalResponse = errors.New("failed to unmarshal response")
	ErrRPCError                  = errors.New("rpc error")
)

const Eth_blockNumber = "eth_blockNumber"

type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	Id      uint64 `json:"id"`
}

func NewRequest(id uint64, method string, params []any) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		Version: "2.0",
		Method:  method,
		Id:      id,
		Params:  params,
	}
}

// RawClient posts JSON-RPC 2.0 requests directly, bypassing ethclient.
type RawClient struct {
	endpoint string
	seqno    atomic.Uint64
	client   http.Client
	headers  map[string]string
	logger   zerolog.Logger
}

func NewRawClient(endpoint string, logger zerolog.Logger) *RawClient {
	return &RawClient{
		endpoint: endpoint,
		logger:   logger,
		headers: map[string]string{
			"Accept": "*/*",
		},
	}
}

// Call sends method with params and returns the "result" member of the response.
func (c *RawClient) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	request := NewRequest(c.seqno.Add(1), method, params)

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToMarshalRequest, err)
	}

	c.logger.Trace().Str(logging.FieldRpcMethod, method).RawJSON("request", requestBody).Send()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadResponse, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, resp.StatusCode, body)
	}

	var rpcResponse map[string]json.RawMessage
	if err := json.Unmarshal(body, &rpcResponse); err != nil {
		c.logger.Debug().Str("response", string(body)).Msg("failed to unmarshal response")
		return nil, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	c.logger.Trace().Str(logging.FieldRpcMethod, method).RawJSON("response", body).Send()

	if errorMsg, ok := rpcResponse["error"]; ok {
		return nil, fmt.Errorf("%w: %s", ErrRPCError, errorMsg)
	}
	result, ok := rpcResponse["result"]
	if !ok {
		return nil, fmt.Errorf("%w: no result in response", ErrFailedToUnmarshalResponse)
	}
	return result, nil
}

// BlockNumber issues a raw eth_blockNumber call and decodes the hex quantity.
func (c *RawClient) BlockNumber(ctx context.Context) (uint64, error) {
	raw, err := c.Call(ctx, Eth_blockNumber)
	if err != nil {
		return 0, err
	}

	var number hexutil.Uint64
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return uint64(number), nil
}
