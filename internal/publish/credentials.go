package publish

import (
	"encoding/json"
	stderrors "errors"
	"strings"

	"cireport/internal/errors"
)

// CredentialsEnv holds the service account JSON for the Realtime Database.
const CredentialsEnv = "FIREBASE_SERVICE_CONFIG"

var ErrMissingCredentials = stderrors.New(CredentialsEnv + " is not set")

// Credentials is a parsed Google service account certificate.
type Credentials struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`

	// JSON is the document as supplied; it is what the database client consumes.
	JSON []byte `json:"-"`
}

// LoadCredentials reads and validates CredentialsEnv using getenv.
func LoadCredentials(getenv func(string) string) (Credentials, error) {
	raw := strings.TrimSpace(getenv(CredentialsEnv))
	if raw == "" {
		return Credentials{}, errors.ConfigError("load credentials", ErrMissingCredentials)
	}
	return ParseCredentials([]byte(raw))
}

// ParseCredentials decodes a service account JSON document and checks the
// fields a certificate credential requires.
func ParseCredentials(b []byte) (Credentials, error) {
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return Credentials{}, errors.ConfigError("parse "+CredentialsEnv, err)
	}
	if c.Type != "service_account" {
		return Credentials{}, errors.ConfigError(`invalid service account certificate: "type" must be "service_account", got "`+c.Type+`"`, nil)
	}
	var missing []string
	if c.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if c.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if len(missing) > 0 {
		return Credentials{}, errors.ConfigError("invalid service account certificate: missing "+strings.Join(missing, ", "), nil)
	}
	c.JSON = append([]byte(nil), b...)
	return c, nil
}
