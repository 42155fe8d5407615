// Package notify calls the external notification functions that send
// welcome email and SMS messages to newly registered customers. The calls
// are best effort; the caller absorbs failures into advisory outcomes.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/domain/models"
)

// Client exposes the outbound notification operations used by the application.
type Client interface {
	SendWelcomeEmail(ctx context.Context, customer models.Customer) (*DeliveryResult, error)
	SendWelcomeSMS(ctx context.Context, customer models.Customer) (*DeliveryResult, error)
}

// DeliveryResult mirrors the JSON body returned by the notification functions.
type DeliveryResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SMSStatus string `json:"smsStatus"`
	SMSMsg    string `json:"smsMessage"`
}

// apiError represents a notification function error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient      *resty.Client
	emailFunctionID string
	smsFunctionID   string
}

// NewClient builds a notification client using the provided configuration values.
func NewClient(cfg config.NotifyConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient:      restyClient,
		emailFunctionID: cfg.EmailFunctionID,
		smsFunctionID:   cfg.SMSFunctionID,
	}
}

// SendWelcomeEmail invokes the welcome-email function with the created customer.
func (c *APIClient) SendWelcomeEmail(ctx context.Context, customer models.Customer) (*DeliveryResult, error) {
	return c.invoke(ctx, c.emailFunctionID, customer)
}

// SendWelcomeSMS invokes the welcome-SMS function with the created customer.
func (c *APIClient) SendWelcomeSMS(ctx context.Context, customer models.Customer) (*DeliveryResult, error) {
	return c.invoke(ctx, c.smsFunctionID, customer)
}

func (c *APIClient) invoke(ctx context.Context, functionID string, customer models.Customer) (*DeliveryResult, error) {
	result := new(DeliveryResult)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(customer).
		SetResult(result).
		SetError(apiErr).
		Post(fmt.Sprintf("/functions/%s", functionID))
	if err != nil {
		return nil, fmt.Errorf("invoke notification function %s: %w", functionID, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error.Message
		code := resp.StatusCode()
		if apiErr.Error.Code != 0 {
			code = apiErr.Error.Code
		}
		return nil, fmt.Errorf("notification api error: code=%d, message=%s", code, message)
	}

	return result, nil
}
