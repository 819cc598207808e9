package model

// Car represents one vehicle listed on the marketplace.  A car can be
// offered for rent, for sale, or both, and carries an embedded list of
// reviews ordered newest first.  The struct maps field-for-field onto
// the entries of the `cars` array in the backing JSON document.
//
// Fields:
//  ID           – numeric identifier assigned at creation time.
//  Make         – manufacturer name (e.g. "Maruti", "Tata").
//  Model        – model name within the make.
//  Year         – model year.
//  Type         – body type (e.g. "Hatchback", "Sedan", "SUV", "MUV").
//  Fuel         – fuel type (e.g. "Petrol", "Diesel", "Electric").
//  Price        – sale price in currency subunits.
//  RentalPerDay – rental price per day.
//  Image        – URL of the listing image.
//  ForSale      – whether the car is offered for sale.
//  ForRent      – whether the car is offered for rent.
//  Reviews      – reviews for this car, newest first, never nil once stored.
type Car struct {
	ID           int64    `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Type         string   `json:"type"`
	Fuel         string   `json:"fuel"`
	Price        float64  `json:"price"`
	RentalPerDay float64  `json:"rentalPerDay"`
	Image        string   `json:"image"`
	ForSale      bool     `json:"forSale"`
	ForRent      bool     `json:"forRent"`
	Reviews      []Review `json:"reviews"`
}

// Review is one entry in a car's reviews list.  Reviews have no identity
// of their own; ordering inside the list is the only structure they carry.
type Review struct {
	User    string `json:"user"`    // reviewer display name
	Rating  int    `json:"rating"`  // star rating, 1 to 5
	Comment string `json:"comment"` // free-text comment
}
