package config

const (
	KeyUpToken     = "up_token"
	KeyUpBaseURL   = "up_base_url"
	KeyUpPageSize  = "up_page_size"
	KeyHTTPTimeout = "up_http_timeout"
	KeyLogLevel    = "log_level"
	KeyTransport   = "transport"
)
