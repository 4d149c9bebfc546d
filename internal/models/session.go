package models

// Session représente l'identité côté front : l'utilisateur et son bearer token.
// Invariant : User et Token sont définis ensemble ou absents ensemble — la
// session est persistée en une seule entrée JSON, jamais champ par champ.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"access_token"`
}

// Active indique si une session authentifiée existe
func (s Session) Active() bool {
	return s.User != nil && s.Token != ""
}
