package command

// OAuthBeginCommandResult carries everything the handler needs to start the
// consent redirect: the provider URL plus the state and PKCE verifier to be
// pinned client-side.
type OAuthBeginCommandResult struct {
	AuthURL  string
	State    string
	Verifier string
}

type OAuthCallbackCommand struct {
	Provider string
	Code     string
	Verifier string
}

// OAuthOutcome tags how account resolution ended.
type OAuthOutcome string

const (
	OutcomeLinked        OAuthOutcome = "linked"
	OutcomeLinkedByEmail OAuthOutcome = "linked_by_email"
	OutcomeCreated       OAuthOutcome = "created"
)

type OAuthCallbackCommandResult struct {
	Token   string
	Outcome OAuthOutcome
}
