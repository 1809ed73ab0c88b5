package entities

// FaithGroupInput is the payload for creating a faith group
type FaithGroupInput struct {
	Name            string        `json:"name"`
	Religion        string        `json:"religion"`
	Denomination    *string       `json:"denomination,omitempty"`
	Description     string        `json:"description"`
	LongDescription *string       `json:"longDescription,omitempty"`
	Address         string        `json:"address"`
	City            string        `json:"city"`
	State           string        `json:"state"`
	ZipCode         string        `json:"zipCode"`
	Latitude        string        `json:"latitude"`
	Longitude       string        `json:"longitude"`
	Phone           *string       `json:"phone,omitempty"`
	Email           *string       `json:"email,omitempty"`
	Website         *string       `json:"website,omitempty"`
	ServiceTimes    []ServiceTime `json:"serviceTimes,omitempty"`
	IsOpen          OpenStatus    `json:"isOpen,omitempty"`
	GooglePlaceID   *string       `json:"googlePlaceId,omitempty"`

	// set by places import only
	Rating      float64 `json:"-"`
	ReviewCount int     `json:"-"`
}

// FaithGroupPatch is a partial update; nil fields are left unchanged
type FaithGroupPatch struct {
	Name            *string        `json:"name,omitempty"`
	Religion        *string        `json:"religion,omitempty"`
	Denomination    *string        `json:"denomination,omitempty"`
	Description     *string        `json:"description,omitempty"`
	LongDescription *string        `json:"longDescription,omitempty"`
	Address         *string        `json:"address,omitempty"`
	City            *string        `json:"city,omitempty"`
	State           *string        `json:"state,omitempty"`
	ZipCode         *string        `json:"zipCode,omitempty"`
	Latitude        *string        `json:"latitude,omitempty"`
	Longitude       *string        `json:"longitude,omitempty"`
	Phone           *string        `json:"phone,omitempty"`
	Email           *string        `json:"email,omitempty"`
	Website         *string        `json:"website,omitempty"`
	ServiceTimes    *[]ServiceTime `json:"serviceTimes,omitempty"`
	IsOpen          *OpenStatus    `json:"isOpen,omitempty"`
	Rating          *float64       `json:"rating,omitempty"`
	ReviewCount     *int           `json:"reviewCount,omitempty"`
}

// ToFaithGroup builds a record from the input; ID and timestamps are left to the caller
func (in *FaithGroupInput) ToFaithGroup() *FaithGroup {
	status := in.IsOpen
	if status == "" {
		status = OpenStatusUnknown
	}
	g := &FaithGroup{
		Name:            in.Name,
		Religion:        in.Religion,
		Denomination:    in.Denomination,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		ZipCode:         in.ZipCode,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Phone:           in.Phone,
		Email:           in.Email,
		Website:         in.Website,
		ServiceTimes:    in.ServiceTimes,
		IsOpen:          status,
		GooglePlaceID:   in.GooglePlaceID,
		Rating:          in.Rating,
		ReviewCount:     in.ReviewCount,
	}
	if g.ServiceTimes == nil {
		g.ServiceTimes = []ServiceTime{}
	}
	return g.Clone()
}

// Apply copies every non-nil patch field onto g
func (p *FaithGroupPatch) Apply(g *FaithGroup) {
	setString(&g.Name, p.Name)
	setString(&g.Religion, p.Religion)
	setString(&g.Description, p.Description)
	setString(&g.Address, p.Address)
	setString(&g.City, p.City)
	setString(&g.State, p.State)
	setString(&g.ZipCode, p.ZipCode)
	setString(&g.Latitude, p.Latitude)
	setString(&g.Longitude, p.Longitude)
	if p.Denomination != nil {
		g.Denomination = StringPtr(*p.Denomination)
	}
	if p.LongDescription != nil {
		g.LongDescription = StringPtr(*p.LongDescription)
	}
	if p.Phone != nil {
		g.Phone = StringPtr(*p.Phone)
	}
	if p.Email != nil {
		g.Email = StringPtr(*p.Email)
	}
	if p.Website != nil {
		g.Website = StringPtr(*p.Website)
	}
	if p.ServiceTimes != nil {
		g.ServiceTimes = append([]ServiceTime{}, (*p.ServiceTimes)...)
	}
	if p.IsOpen != nil {
		g.IsOpen = *p.IsOpen
	}
	if p.Rating != nil {
		g.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		g.ReviewCount = *p.ReviewCount
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
