package shipment

// Party is a contact block for one side of a shipment. All fields are free
// text; required-field and email-syntax checks happen at the HTTP boundary
// before the core is invoked. Email and Zip are only populated for the
// receiver side.
type Party struct {
	CompanyName string
	Name        string
	Phone       string
	Email       string
	Address     string
	City        string
	Country     string
	Postal      string
	Zip         string
}
