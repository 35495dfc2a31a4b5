package client

// Client entity. The credential hash is opaque to the domain; hashing and
// verification live in the password package.
type Client struct {
	id             int64
	name           Name
	email          Email
	phone          Phone
	credentialHash string
}

func NewClient(name Name, email Email, phone Phone, credentialHash string) *Client {
	return &Client{
		name:           name,
		email:          email,
		phone:          phone,
		credentialHash: credentialHash,
	}
}

func ReconstructClient(id int64, name Name, email Email, phone Phone, credentialHash string) *Client {
	return &Client{
		id:             id,
		name:           name,
		email:          email,
		phone:          phone,
		credentialHash: credentialHash,
	}
}

func (c *Client) ID() int64              { return c.id }
func (c *Client) Name() Name             { return c.name }
func (c *Client) Email() Email           { return c.email }
func (c *Client) Phone() Phone           { return c.phone }
func (c *Client) CredentialHash() string { return c.credentialHash }
