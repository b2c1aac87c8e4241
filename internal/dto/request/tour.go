package request

// Tour writes arrive as multipart forms; scalar fields are form values
// and prices/languages/deleteMedia are JSON-encoded strings.
type TourForm struct {
	Title            string
	Description      string
	Duration         string
	Type             string
	Availability     string
	PickUpAndDropOff string
	Details          string
	ViewPrice        string
	Note             string
	FullDay          string
	Languages        string // JSON array of strings
	Prices           string // JSON array of {label, amount}
	City             string
	DeleteMedia      string // JSON array of media URLs (update only)
}

type SingletonTourForm struct {
	Title            string `validate:"required"`
	Duration         string `validate:"required"`
	PickUpAndDropOff string `validate:"required"`
	Details          string `validate:"required"`
	FullDay          string `validate:"required"`
	Note             string
	Description      string `validate:"required"`
	Type             string `validate:"required"`
	Availability     string `validate:"required"`
	Price            string `validate:"required"`
	City             string `validate:"required"`
}
