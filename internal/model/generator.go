package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length      int   `json:"length" validate:"gte=0,lte=1024"`
	Uppercase   *bool `json:"uppercase"`
	Lowercase   *bool `json:"lowercase"`
	Numbers     *bool `json:"numbers"`
	Symbols     *bool `json:"symbols"`
	RequireEach bool  `json:"require_each"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// KeyRequest represents a Base64 key generation request. A zero size means 32 bytes.
type KeyRequest struct {
	Bytes   int  `json:"bytes" validate:"gte=0,lte=1024"`
	URLSafe bool `json:"url_safe"`
}

// KeyResponse represents a Base64 key generation response.
type KeyResponse struct {
	Key      string           `json:"key"`
	Bytes    int              `json:"bytes"`
	Encoding string           `json:"encoding"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for a rating of a password produced with the given categories.
type StrengthRequest struct {
	Password  string `json:"password" validate:"max=4096"`
	Uppercase bool   `json:"uppercase"`
	Lowercase bool   `json:"lowercase"`
	Numbers   bool   `json:"numbers"`
	Symbols   bool   `json:"symbols"`
}

// StrengthResponse carries a heuristic strength score and its label.
type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}
