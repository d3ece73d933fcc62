package lambda

// ProxySource names the AWS service whose event format the lambda
// handler translates into http requests.
type ProxySource string

const (
	// ProxySourceApiGatewayV1 represents an API Gateway v1 request.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 represents an API Gateway v2 request.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb represents an Application Load Balancer request.
	ProxySourceAlb ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

// Config is the configuration of the lambda command.
type Config struct {
	// ProxySource is the source of the AWS Lambda event. Defaults to
	// ProxySourceApiGatewayV2.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}
