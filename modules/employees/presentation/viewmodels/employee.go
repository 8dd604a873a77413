package viewmodels

// Employee is the display shape for list rows and editor prefill. Everything
// is a string so the transport layer never does formatting.
type Employee struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Age         string `json:"age"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Gender      string `json:"gender"`
}
