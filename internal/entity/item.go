package entity

type OrderItem struct {
	ProductRef string `json:"product_ref" validate:"required,max=255"`
	Title      string `json:"title"       validate:"max=255"`
	Quantity   int    `json:"quantity"    validate:"gte=0"`
}

type Address struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address1      string `json:"address1"`
	ZipCode       string `json:"zip_code"`
	City          string `json:"city"`
	CountryAlpha2 string `json:"country_alpha2" validate:"omitempty,len=2"`
	CountryCode   string `json:"country_code"`
	Phone         string `json:"phone"`
	CellPhone     string `json:"cellphone"`
}

// ContactPhone prefers the cell phone over the landline.
func (a *Address) ContactPhone() string {
	if a.CellPhone != "" {
		return a.CellPhone
	}
	return a.Phone
}
