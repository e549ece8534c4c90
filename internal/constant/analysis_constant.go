package constant

const (
	// AppName scopes in-memory sessions; a single deployment runs one app.
	AppName = "analyser-agent"

	// DefaultUserId is assumed when the request context carries no user_id.
	DefaultUserId = "default_a2a_user"

	// ApprovalThreshold: a result is Approved only when its score is strictly above this.
	ApprovalThreshold = 70.0

	StatusApproved = "Approved"
	StatusReject   = "Reject"
)
