package wallet

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"vegamm/internal/model"
	"vegamm/pkg/exception"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"
)

// Result is the venue's acknowledgement of a submitted command.
type Result struct {
	TxHash string `json:"txHash"`
	Code   int64  `json:"code"`
}

// Submitter signs and submits a batch command for one account. The two
// submitters the engine owns are each used from a single goroutine only.
type Submitter interface {
	PubKey() string
	Send(ctx context.Context, batch model.BatchMarketInstructions) (Result, error)
}

// Client submits commands through an external wallet service which holds the
// keys; this process never sees them.
type Client struct {
	base   string
	token  string
	pubKey string
	client *http.Client
}

func NewClient(serviceURL, token, pubKey string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		base:   strings.TrimRight(serviceURL, "/"),
		token:  token,
		pubKey: pubKey,
		client: client,
	}
}

func (c *Client) PubKey() string {
	return c.pubKey
}

type commandRequest struct {
	PublicKey               string                        `json:"publicKey"`
	BatchMarketInstructions model.BatchMarketInstructions `json:"batchMarketInstructions"`
}

type commandResponse struct {
	TxHash string `json:"txHash"`
	Code   int64  `json:"code"`
	Error  string `json:"error"`
}

func (c *Client) Send(ctx context.Context, batch model.BatchMarketInstructions) (Result, error) {
	if len(batch.Cancellations) == 0 && len(batch.Submissions) == 0 {
		return Result{}, exception.ErrOrderEmptyBatch
	}

	body, err := sonic.Marshal(commandRequest{
		PublicKey:               c.pubKey,
		BatchMarketInstructions: batch,
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "marshal command")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/v2/command", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, errors.Wrap(err, "send command")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errors.Wrap(err, "read response body")
	}

	var decoded commandResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return Result{}, errors.Wrap(exception.ErrOrderDecodeResponse, err.Error())
	}
	if resp.StatusCode != http.StatusOK || decoded.Error != "" {
		return Result{}, errors.Wrap(exception.ErrOrderRejected, decoded.Error).
			With("status", resp.Status).
			With("pubkey", c.pubKey)
	}

	return Result{TxHash: decoded.TxHash, Code: decoded.Code}, nil
}
