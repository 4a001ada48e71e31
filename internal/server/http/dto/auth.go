package dto

// AuthRequest describes login/password payload.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TranslatorRegisterRequest describes the translator self-registration payload.
type TranslatorRegisterRequest struct {
	Login         string   `json:"login"`
	Password      string   `json:"password"`
	ContactEmail  string   `json:"contact_email"`
	LanguagePairs []string `json:"language_pairs"`
}
