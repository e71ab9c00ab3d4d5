package httpt

type ErrorResponse struct {
	Error string `json:"error"`
}

type EligibilityResponse struct {
	OrderID  int64 `json:"order_id"`
	Eligible bool  `json:"eligible"`
}

// StatusResponse reports the module configuration with the private key masked.
type StatusResponse struct {
	Mode        string            `json:"mode"`
	Completed   bool              `json:"completed"`
	MissingKeys []string          `json:"missing_keys"`
	Settings    map[string]string `json:"settings"`
}
