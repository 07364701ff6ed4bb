package entity

// Contact is a raw, unenriched entry from an uploaded contact list. The
// enrichment collaborator turns these into Leads with a product interest.
type Contact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Institution string `json:"institution,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Membership  string `json:"membership,omitempty"`
}

// SampleContacts is the illustrative download offered next to the upload
// form. Not part of any contract, purely a reference shape for operators.
var SampleContacts = []Contact{
	{
		Name:        "Janarthan V",
		Email:       "janarthan@example.com",
		Phone:       "+919876543210",
		Institution: "Example University",
	},
}
