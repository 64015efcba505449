package models

// Client type constants
const (
	ClientTypeIndividual = "Individual"
	ClientTypeCompany    = "Company"
)

// Client represents a person or company the firm works for
type Client struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email" yaml:"email"`
	Phone     string `json:"phone" yaml:"phone"`
	Address   string `json:"address" yaml:"address"`
	Type      string `json:"type" yaml:"type"`
	DateAdded string `json:"date_added" yaml:"date_added"` // YYYY-MM-DD
}

// GetID returns the client id
func (c Client) GetID() string {
	return c.ID
}

// WithID returns a copy of the client carrying id
func (c Client) WithID(id string) Client {
	c.ID = id
	return c
}

// Clone returns a copy of the client
func (c Client) Clone() Client {
	return c
}

// SearchFields returns the values matched by free-text search
func (c Client) SearchFields() []string {
	return []string{c.Name, c.Email, c.Phone}
}

// IsCompany checks if the client is a company
func (c *Client) IsCompany() bool {
	return c.Type == ClientTypeCompany
}

// IsValidClientType checks if the client type is valid
func IsValidClientType(clientType string) bool {
	return clientType == ClientTypeIndividual || clientType == ClientTypeCompany
}
