// Package center holds the static donation-center catalog. Centers are not
// persisted; the scheduling flow copies the chosen center's fields into the
// appointment record, and the displayed slot counts are informational only.
package center

// Center is a donation location offered during scheduling.
type Center struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Hours          string `json:"hours"`
	Distance       string `json:"distance"`
	AvailableSlots int    `json:"availableSlots"`
}

var catalog = []Center{
	{
		ID:             1,
		Name:           "Central Blood Donation Center",
		Address:        "123 Main Street, Downtown",
		Hours:          "Mon-Fri: 8AM-7PM, Sat: 9AM-5PM",
		Distance:       "2.3 miles",
		AvailableSlots: 12,
	},
	{
		ID:             2,
		Name:           "Northside Blood Bank",
		Address:        "456 Park Avenue, Northside",
		Hours:          "Mon-Sat: 9AM-8PM, Sun: 10AM-4PM",
		Distance:       "3.7 miles",
		AvailableSlots: 8,
	},
	{
		ID:             3,
		Name:           "Eastside Health Center",
		Address:        "789 Medical Drive, Eastside",
		Hours:          "Mon-Fri: 7AM-9PM",
		Distance:       "1.5 miles",
		AvailableSlots: 15,
	},
}

// timeSlots are the half-hour labels offered for every center, with a midday
// break between 11:30 AM and 1:00 PM.
var timeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM",
}

// All returns the catalog. Callers get a copy and may not mutate the catalog
// through it.
func All() []Center {
	out := make([]Center, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a center; ok is false when the id is not in the catalog.
func ByID(id int) (Center, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Center{}, false
}

// TimeSlots returns the slot labels offered during scheduling.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}
