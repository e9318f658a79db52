package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// Handle serves an API Gateway proxy event through the same middleware and
// router as the HTTP server.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.proxy.ProxyWithContext(ctx, event)
}
