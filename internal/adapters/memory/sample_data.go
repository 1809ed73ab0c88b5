package memory

import (
	"time"

	"github.com/faithfinder/backend/internal/domain/entities"
)

// SampleFaithGroups returns the demo directory used by development builds
// and the seed command. IDs are stable so links survive restarts.
func SampleFaithGroups() []*entities.FaithGroup {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sf := func(id, name, religion, denomination, description, address, zip, lat, lon, phone, email, website string, rating float64, reviews int, times ...entities.ServiceTime) *entities.FaithGroup {
		return &entities.FaithGroup{
			ID:           id,
			Name:         name,
			Religion:     religion,
			Denomination: entities.StringPtr(denomination),
			Description:  description,
			Address:      address,
			City:         "San Francisco",
			State:        "CA",
			ZipCode:      zip,
			Latitude:     lat,
			Longitude:    lon,
			Phone:        entities.StringPtr(phone),
			Email:        entities.StringPtr(email),
			Website:      entities.StringPtr(website),
			Rating:       rating,
			ReviewCount:  reviews,
			ServiceTimes: times,
			IsOpen:       entities.OpenStatusOpen,
			CreatedAt:    created,
			UpdatedAt:    created,
		}
	}

	return []*entities.FaithGroup{
		sf("5b8e1f0a-2c31-4d7e-9a64-0f1e2d3c4b01", "Grace Community Church", "Christianity", "Non-denominational Christian",
			"A welcoming community focused on worship, fellowship, and serving our neighborhood. We offer services in multiple languages and have active youth programs.",
			"1234 Mission Street", "94103", "37.77490000", "-122.41940000",
			"(415) 555-0123", "info@gracecommunitysf.org", "www.gracecommunitysf.org", 4.8, 127,
			entities.ServiceTime{Day: "Sunday Morning", Time: "9:00 AM & 11:00 AM"},
			entities.ServiceTime{Day: "Wednesday Evening", Time: "7:00 PM"},
			entities.ServiceTime{Day: "Bible Study", Time: "Saturday 10:00 AM"},
		),
		sf("5b8e1f0a-2c31-4d7e-9a64-0f1e2d3c4b02", "St. Mary's Catholic Church", "Christianity", "Roman Catholic",
			"Historic parish serving the community for over 100 years. Daily masses, confession, and various ministries for all ages.",
			"567 California Street", "94108", "37.78490000", "-122.40940000",
			"(415) 555-0156", "parish@stmarysSF.org", "www.stmarysSF.org", 4.6, 98,
			entities.ServiceTime{Day: "Sunday Mass", Time: "8:00 AM, 10:00 AM, 12:00 PM"},
			entities.ServiceTime{Day: "Daily Mass", Time: "7:00 AM, 5:30 PM"},
			entities.ServiceTime{Day: "Confession", Time: "Saturday 3:00-4:00 PM"},
		),
		sf("5b8e1f0a-2c31-4d7e-9a64-0f1e2d3c4b03", "Temple Beth Shalom", "Judaism", "Conservative Judaism",
			"Vibrant Jewish community offering traditional and contemporary services, Hebrew school, and cultural programs.",
			"890 Fillmore Street", "94115", "37.78490000", "-122.43240000",
			"(415) 555-0234", "info@bethshalomsf.org", "www.bethshalomsf.org", 4.7, 64,
			entities.ServiceTime{Day: "Friday Evening", Time: "6:30 PM"},
			entities.ServiceTime{Day: "Saturday Morning", Time: "10:00 AM"},
			entities.ServiceTime{Day: "Hebrew School", Time: "Sunday 9:00 AM"},
		),
		sf("5b8e1f0a-2c31-4d7e-9a64-0f1e2d3c4b04", "Islamic Center of San Francisco", "Islam", "Sunni Islam",
			"Community mosque providing daily prayers, Friday services, Islamic education, and community events.",
			"456 Geary Boulevard", "94118", "37.78490000", "-122.46440000",
			"(415) 555-0345", "info@islamiccentersf.org", "www.islamiccentersf.org", 4.5, 152,
			entities.ServiceTime{Day: "Friday Prayer", Time: "1:00 PM"},
			entities.ServiceTime{Day: "Daily Prayers", Time: "5 times daily"},
			entities.ServiceTime{Day: "Islamic Classes", Time: "Saturday 10:00 AM"},
		),
		sf("5b8e1f0a-2c31-4d7e-9a64-0f1e2d3c4b05", "Buddhist Meditation Center", "Buddhism", "Zen Buddhism",
			"Peaceful meditation center offering guided meditation, dharma talks, and mindfulness workshops.",
			"789 Pine Street", "94108", "37.78890000", "-122.40940000",
			"(415) 555-0456", "info@buddhismcentersf.org", "www.buddhismcentersf.org", 4.9, 41,
			entities.ServiceTime{Day: "Morning Meditation", Time: "Daily 7:00 AM"},
			entities.ServiceTime{Day: "Evening Sit", Time: "Daily 6:00 PM"},
			entities.ServiceTime{Day: "Dharma Talk", Time: "Sunday 10:00 AM"},
		),
	}
}
