package auth

// OAuthIdentity represents user information obtained from the identity provider.
type OAuthIdentity struct {
	Email      string
	Name       *string
	AvatarURL  *string
	ProviderID string
}
