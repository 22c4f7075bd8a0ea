package auth

// Identity is the authenticated user as reported by the identity provider.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

// Session is what the gate knows about the caller.
type Session struct {
	User    *Identity `json:"user"`
	Loading bool      `json:"loading"`
}

type Decision int

const (
	// DecisionWait means the identity is still being resolved: render nothing yet.
	DecisionWait Decision = iota
	// DecisionRedirect means resolution finished without a user: send them to the login surface.
	DecisionRedirect
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionRedirect:
		return "redirect"
	default:
		return "allow"
	}
}

func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Decide maps a session to what the presentation layer may do.
func Decide(s Session) Decision {
	switch {
	case s.Loading:
		return DecisionWait
	case s.User == nil || s.User.UID == "":
		return DecisionRedirect
	default:
		return DecisionAllow
	}
}
