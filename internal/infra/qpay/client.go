// Package qpay is a client for the QPay v2 merchant API: QR invoices paid
// from Mongolian banking apps.
package qpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"resort-booking/internal/domain/payment"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	defaultTimeout    = 15 * time.Second
	tokenRefreshSkew  = time.Minute
	errorBodyReadSize = 1024
)

// Client implements shared.PaymentProvider.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	username    string
	password    string
	invoiceCode string
	logger      *slog.Logger
	now         func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

func WithNow(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClient(cfg config.QPayConfig, opts ...Option) (*Client, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errs.New("qpay credentials are required")
	}
	if cfg.InvoiceCode == "" {
		return nil, errs.New("qpay invoice code is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		username:    cfg.Username,
		password:    cfg.Password,
		invoiceCode: cfg.InvoiceCode,
		logger:      slog.Default().With("component", "qpay"),
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// token returns the cached access token, fetching a new one shortly before
// the old one expires.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiresAt.Add(-tokenRefreshSkew)) {
		return c.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", nil)
	if err != nil {
		return "", errs.Wrap(err, "build token request")
	}
	req.SetBasicAuth(c.username, c.password)

	var resp tokenResponse
	if err := c.send(req, &resp); err != nil {
		return "", errs.Wrap(err, "fetch qpay token")
	}
	if resp.AccessToken == "" {
		return "", errs.Mark(errs.New("qpay returned an empty token"), errs.ErrProviderUnavailable)
	}
	c.accessToken = resp.AccessToken
	c.expiresAt = c.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// postJSON retries once with a fresh token on 401.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrapf(err, "encode %s request", path)
	}

	for attempt := 0; attempt < 2; attempt++ {
		tok, err := c.token(ctx)
		if err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return errs.Wrapf(err, "build %s request", path)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tok)

		err = c.send(req, out)
		if errors.Is(err, errUnauthorized) && attempt == 0 {
			c.invalidateToken()
			continue
		}
		return err
	}
	return errs.Mark(errs.Newf("%s unauthorized after token refresh", path), errs.ErrProviderUnavailable)
}

var errUnauthorized = errs.New("qpay unauthorized")

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "call %s", req.URL.Path), errs.ErrProviderUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return errUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadSize))
		c.logger.Warn("qpay request failed",
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"body", string(snippet))
		return errs.Mark(errs.Newf("%s returned status %d", req.URL.Path, resp.StatusCode), errs.ErrProviderUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s response", req.URL.Path), errs.ErrProviderUnavailable)
	}
	return nil
}

type invoiceRequest struct {
	InvoiceCode         string          `json:"invoice_code"`
	SenderInvoiceNo     string          `json:"sender_invoice_no"`
	InvoiceReceiverCode string          `json:"invoice_receiver_code"`
	InvoiceDescription  string          `json:"invoice_description"`
	Amount              decimal.Decimal `json:"amount"`
	CallbackURL         string          `json:"callback_url"`
}

type invoiceResponse struct {
	InvoiceID string `json:"invoice_id"`
	QRText    string `json:"qr_text"`
	QRImage   string `json:"qr_image"`
	ShortURL  string `json:"qPay_shortUrl"`
	URLs      []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Logo        string `json:"logo"`
		Link        string `json:"link"`
	} `json:"urls"`
}

func (c *Client) CreateInvoice(ctx context.Context, in payment.InvoiceRequest) (*payment.Invoice, error) {
	if !in.Amount.IsPositive() {
		return nil, errs.New("invoice amount must be positive")
	}
	body := invoiceRequest{
		InvoiceCode:         c.invoiceCode,
		SenderInvoiceNo:     in.Reference,
		InvoiceReceiverCode: "terminal",
		InvoiceDescription:  in.Description,
		Amount:              in.Amount,
		CallbackURL:         in.CallbackURL,
	}

	var resp invoiceResponse
	if err := c.postJSON(ctx, "/invoice", body, &resp); err != nil {
		return nil, err
	}
	if resp.InvoiceID == "" {
		return nil, errs.Mark(errs.New("qpay returned no invoice id"), errs.ErrProviderUnavailable)
	}

	inv := &payment.Invoice{
		ID:       resp.InvoiceID,
		QRText:   resp.QRText,
		QRImage:  resp.QRImage,
		ShortURL: resp.ShortURL,
	}
	for _, u := range resp.URLs {
		inv.BankLinks = append(inv.BankLinks, payment.BankLink(u))
	}
	c.logger.InfoContext(ctx, "invoice created", "reference", in.Reference, "invoice_id", inv.ID)
	return inv, nil
}

type checkRequest struct {
	ObjectType string `json:"object_type"`
	ObjectID   string `json:"object_id"`
	Offset     struct {
		PageNumber int `json:"page_number"`
		PageLimit  int `json:"page_limit"`
	} `json:"offset"`
}

type checkResponse struct {
	Count      int             `json:"count"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Rows       []struct {
		PaymentID     string          `json:"payment_id"`
		PaymentStatus string          `json:"payment_status"`
		PaymentAmount decimal.Decimal `json:"payment_amount"`
	} `json:"rows"`
}

// CheckInvoice sums PAID rows; the caller compares the amount to the total.
func (c *Client) CheckInvoice(ctx context.Context, invoiceID string) (*payment.CheckResult, error) {
	body := checkRequest{ObjectType: "INVOICE", ObjectID: invoiceID}
	body.Offset.PageNumber = 1
	body.Offset.PageLimit = 100

	var resp checkResponse
	if err := c.postJSON(ctx, "/payment/check", body, &resp); err != nil {
		return nil, err
	}

	result := &payment.CheckResult{PaidAmount: decimal.Zero}
	for _, row := range resp.Rows {
		if row.PaymentStatus != "PAID" {
			continue
		}
		result.Paid = true
		result.PaidAmount = result.PaidAmount.Add(row.PaymentAmount)
		if result.PaymentID == "" {
			result.PaymentID = row.PaymentID
		}
	}
	return result, nil
}
