// Package credentials reads the timeline API keys from a YAML document.
package credentials

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go-tweetlab/errs"
)

// DefaultPath is where the fetch command looks when TWEETLAB_CREDENTIALS is unset.
const DefaultPath = "../../credentials/credentials.yml"

// Credentials holds the consumer and access token pairs. Use them to build a
// client and drop them; String never prints the values.
type Credentials struct {
	APIKey            string `yaml:"Twitter_api_Key"`
	APISecret         string `yaml:"Twitter_api_secret"`
	AccessToken       string `yaml:"Twitter_access_token_key"`
	AccessTokenSecret string `yaml:"Twitter_access_token_secret"`
}

// String implements fmt.Stringer with every value redacted.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s APISecret:%s AccessToken:%s AccessTokenSecret:%s}",
		redact(c.APIKey), redact(c.APISecret), redact(c.AccessToken), redact(c.AccessTokenSecret))
}

// GoString keeps %#v from printing the values either.
func (c Credentials) GoString() string { return c.String() }

func redact(v string) string {
	if v == "" {
		return "<empty>"
	}
	return "<redacted>"
}

// Validate reports the first missing key.
func (c Credentials) Validate() error {
	fields := []struct{ key, value string }{
		{"Twitter_api_Key", c.APIKey},
		{"Twitter_api_secret", c.APISecret},
		{"Twitter_access_token_key", c.AccessToken},
		{"Twitter_access_token_secret", c.AccessTokenSecret},
	}
	for _, f := range fields {
		if f.value == "" {
			return errs.Configuration("credentials: %s is missing", f.key)
		}
	}
	return nil
}

// Parse decodes and validates a credentials document.
func Parse(r io.Reader) (*Credentials, error) {
	var c Credentials
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if err == io.EOF {
			return nil, errs.Configuration("credentials: empty document")
		}
		return nil, errs.WrapConfiguration(err, "decoding credentials")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the credentials file at path.
func Load(path string) (*Credentials, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.WrapConfiguration(err, "opening credentials file")
	}
	defer file.Close()
	return Parse(file)
}
