package domain

// UserForm holds every user-entered field of the configurator. It is owned
// exclusively by the active session, mutated in place through the session
// manager, and persisted after every mutation.
type UserForm struct {
	ChildName    string `json:"child_name"`
	Nickname     string `json:"nickname"`
	Companion    string `json:"companion"`
	FavoriteSong string `json:"favorite_song"`
	BigWish      string `json:"big_wish"`
	ShipName     string `json:"ship_name"`
	Age          int    `json:"age"`
	Pronouns     string `json:"pronouns"`
	Language     string `json:"language"`
	Cover        string `json:"cover"`
	IncludePhoto bool   `json:"include_photo"`
}

// DefaultForm returns the fixed seed values every new session starts from.
// A full reset restores exactly these values.
func DefaultForm() UserForm {
	return UserForm{
		ChildName:    "",
		Nickname:     "",
		Companion:    "",
		FavoriteSong: "",
		BigWish:      "",
		ShipName:     "",
		Age:          5,
		Pronouns:     "they",
		Language:     "English",
		Cover:        "",
		IncludePhoto: false,
	}
}

// OrderOptions captures the purchase-side selections of a session.
// Quantity is coerced to a minimum of 1 wherever it enters the system.
type OrderOptions struct {
	TemplateID string `json:"template_id"`
	Hardcover  bool   `json:"hardcover"`
	GiftWrap   bool   `json:"gift_wrap"`
	Quantity   int    `json:"quantity"`
	PhotoRef   string `json:"photo_ref,omitempty"`
}

// DefaultOrder returns the seed order options. The template ID is left empty
// here; the session manager resolves it to the first catalog template.
func DefaultOrder() OrderOptions {
	return OrderOptions{
		Quantity: 1,
	}
}

// CartLine is one mock cart entry produced by the add-to-cart action.
// There is no checkout behind it; it only records what the user configured.
type CartLine struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	Hardcover  bool   `json:"hardcover"`
	GiftWrap   bool   `json:"gift_wrap"`
	Quantity   int    `json:"quantity"`
	Total      int64  `json:"total"`
}

// SessionState is the persisted snapshot of a configuration session.
type SessionState struct {
	Form  UserForm     `json:"form"`
	Order OrderOptions `json:"order"`
	Cart  []CartLine   `json:"cart,omitempty"`

	// Sealed holds the encrypted snapshot when a store middleware
	// encrypts state at rest. When set, every other field is zero.
	Sealed string `json:"sealed,omitempty"`
}

// NewSessionState creates a clean session seeded with the documented
// defaults, selecting the given catalog template.
func NewSessionState(templateID string) *SessionState {
	return &SessionState{
		Form:  DefaultForm(),
		Order: OrderOptions{TemplateID: templateID, Quantity: 1},
	}
}
