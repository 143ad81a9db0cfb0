package models

// Credential is the bearer token pair issued by the token endpoint. The same
// JSON shape is what gets persisted locally.
type Credential struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
