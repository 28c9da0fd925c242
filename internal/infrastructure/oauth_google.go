package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthClaims is the provider-asserted identity consumed by account
// resolution.
type OAuthClaims struct {
	Subject string
	Email   string
	Name    string
}

// OAuthProvider abstracts one configured OAuth provider. The handshake
// mechanics (consent URL, PKCE, code exchange) live here; callers only see
// decoded claims and the exchanged token.
type OAuthProvider interface {
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	FetchClaims(ctx context.Context, token *oauth2.Token) (*OAuthClaims, error)
}

type GoogleOAuth struct {
	config *oauth2.Config
}

func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	return &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

func (g *GoogleOAuth) AuthCodeURL(state, verifier string) string {
	return g.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)
}

func (g *GoogleOAuth) Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	return g.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
}

// FetchClaims queries the userinfo endpoint over the token-bound client, so
// the identity is asserted by the provider rather than decoded from an
// unvalidated token payload.
func (g *GoogleOAuth) FetchClaims(ctx context.Context, token *oauth2.Token) (*OAuthClaims, error) {
	resp, err := g.config.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var info struct {
		Id    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Id == "" || info.Email == "" {
		return nil, fmt.Errorf("userinfo response missing subject or email")
	}

	return &OAuthClaims{Subject: info.Id, Email: info.Email, Name: info.Name}, nil
}
