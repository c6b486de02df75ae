package entity

type Region int

const (
	RegionDomestic Region = iota
	RegionInternational
)

func (r Region) String() string {
	if r == RegionInternational {
		return "international"
	}
	return "domestic"
}

type Airport struct {
	Code    string
	City    string
	Country string
}

// RegionFor classifies the airport relative to the directory's home country.
func (a Airport) RegionFor(homeCountry string) Region {
	if a.Country == homeCountry {
		return RegionDomestic
	}
	return RegionInternational
}
