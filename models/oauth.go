package models

// GrantTypeClientCredentials is the OAuth grant used for public tokens.
const GrantTypeClientCredentials = "client_credentials"

// TokenRequest is the form posted to the OAuth token endpoint.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// ErrorResponse is the error body returned by the API.
type ErrorResponse struct {
	Errors struct {
		Status   string `json:"status"`
		Title    string `json:"title"`
		Detail   string `json:"detail"`
		Messages []any  `json:"messages,omitempty"`
	} `json:"errors"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Message returns the most descriptive human-readable text in the body.
func (e ErrorResponse) Message() string {
	switch {
	case e.Errors.Detail != "":
		return e.Errors.Detail
	case e.Errors.Title != "":
		return e.Errors.Title
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Error
	}
}
