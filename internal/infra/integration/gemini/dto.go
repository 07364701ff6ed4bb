package gemini

// EnrichedLead is one classified record returned by the model. There is no
// guaranteed 1:1 positional correspondence with the input contacts;
// correlate by id only.
type EnrichedLead struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Institution     string `json:"institution,omitempty"`
	ProductInterest string `json:"productInterest"`
	Reasoning       string `json:"reasoning"`
}

type DraftTurn struct {
	Role    string `json:"role"` // "user" | "model"
	Content string `json:"content"`
}

type DraftInput struct {
	History        []DraftTurn `json:"history"`
	InitialMessage string      `json:"initialMessage,omitempty"`
}

type DraftOutput struct {
	Title string `json:"title"`
	Draft string `json:"draft"`
}

type suggestChannelsOutput struct {
	SuggestedChannels []string `json:"suggestedChannels"`
}

type composeOutput struct {
	Message string `json:"message"`
}

type adjustToneOutput struct {
	AdjustedMessage string `json:"adjustedMessage"`
}
