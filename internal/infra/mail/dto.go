package mail

type ConfirmationEmailData struct {
	Name           string
	RestaurantName string
	Date           string
	Time           string
	Guests         int
	Phone          string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
