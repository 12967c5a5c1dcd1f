package appwrite

import "net/url"

// Avatars exposes the facade's generated-avatar URLs. Derivation is pure URL
// construction; no remote call is involved.
type Avatars struct {
	client *Client
}

// NewAvatars constructs the avatar service over the provided client.
func NewAvatars(client *Client) *Avatars {
	return &Avatars{client: client}
}

// InitialsURL returns an avatar URL rendering the initials of name.
func (a *Avatars) InitialsURL(name string) string {
	values := url.Values{}
	values.Set("name", name)
	values.Set("project", a.client.projectID)

	return a.client.url("/avatars/initials", values)
}
