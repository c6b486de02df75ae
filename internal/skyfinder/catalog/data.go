package catalog

import "github.com/king-open/SkyFinder/internal/skyfinder/entity"

const (
	homeCountry = "中国"
	currency    = "¥"
)

func direct(id, from, to, fromCity, toCity, dep, arr, dur, price, airline string, intl bool) entity.Flight {
	return entity.Flight{
		ID:              id,
		Origin:          from,
		Destination:     to,
		OriginCity:      fromCity,
		DestinationCity: toCity,
		DepartureTime:   dep,
		ArrivalTime:     arr,
		Duration:        dur,
		Transfers:       entity.TransferDirect,
		Price:           price,
		Airline:         airline,
		International:   intl,
	}
}

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	business := direct("CA1301", "PEK", "CAN", "北京首都", "广州白云", "06:30 PM", "09:45 PM", "3h15m", "¥3880", "国航", false)
	business.CabinClass = entity.CabinBusiness

	first := direct("MU587", "PVG", "NRT", "上海浦东", "东京成田", "01:00 PM", "04:40 PM", "2h40m", "¥6880", "东航", true)
	first.CabinClass = entity.CabinFirst

	return &Catalog{
		Flights: []entity.Flight{
			direct("MU5102", "PEK", "SHA", "北京首都", "上海虹桥", "10:00 AM", "12:15 PM", "2h15m", "¥1380", "东航", false),
			direct("CA1501", "PEK", "SHA", "北京首都", "上海虹桥", "07:00 AM", "09:20 AM", "2h20m", "¥1280", "国航", false),
			direct("CZ3101", "PEK", "CAN", "北京首都", "广州白云", "08:00 AM", "11:15 AM", "3h15m", "¥1580", "南航", false),
			business,
			direct("CA1858", "PEK", "CTU", "北京首都", "成都双流", "03:10 PM", "06:20 PM", "3h10m", "¥1680", "国航", false),
			direct("CA111", "PEK", "HKG", "北京首都", "香港", "01:30 PM", "05:20 PM", "3h50m", "¥2200", "国航", true),
			direct("CA925", "PEK", "NRT", "北京首都", "东京成田", "09:00 AM", "01:20 PM", "3h20m", "¥2680", "国航", true),
			direct("KE852", "PEK", "ICN", "北京首都", "首尔仁川", "11:40 AM", "02:45 PM", "2h05m", "¥1980", "大韩航空", true),
			direct("FM9101", "SHA", "PEK", "上海虹桥", "北京首都", "06:50 PM", "09:05 PM", "2h15m", "¥1180", "上航", false),
			direct("MU5301", "SHA", "SZX", "上海虹桥", "深圳宝安", "09:30 AM", "12:00 PM", "2h30m", "¥1380", "东航", false),
			direct("HO1251", "SHA", "KMG", "上海虹桥", "昆明长水", "12:20 PM", "03:55 PM", "3h35m", "¥1560", "吉祥", false),
			direct("MU501", "SHA", "HKG", "上海虹桥", "香港", "11:00 AM", "01:45 PM", "2h45m", "¥1980", "东航", true),
			first,
			direct("CZ3102", "CAN", "PEK", "广州白云", "北京首都", "07:30 AM", "10:45 AM", "3h15m", "¥1490", "南航", false),
			direct("CZ3501", "CAN", "CTU", "广州白云", "成都双流", "04:00 PM", "06:20 PM", "2h20m", "¥1120", "南航", false),
			direct("ZH9801", "SZX", "PEK", "深圳宝安", "北京首都", "08:45 PM", "12:10 AM", "3h25m", "¥1350", "深航", false),
			direct("CA4201", "CKG", "PEK", "重庆江北", "北京首都", "07:40 AM", "10:10 AM", "2h30m", "¥1450", "国航", false),
			direct("3U8881", "CTU", "SHA", "成都双流", "上海虹桥", "02:30 PM", "05:10 PM", "2h40m", "¥1290", "川航", false),
			direct("CZ6101", "SHE", "PEK", "沈阳桃仙", "北京首都", "06:10 AM", "07:50 AM", "1h40m", "¥890", "南航", false),
			direct("MU2101", "XIY", "SHA", "西安咸阳", "上海虹桥", "10:25 AM", "12:40 PM", "2h15m", "¥1100", "东航", false),
			direct("AF006", "CDG", "JFK", "巴黎", "纽约", "02:00 AM", "10:00 AM", "8h", "$120.00", "AIRBUS", true),
		},
		Airports: []entity.Airport{
			{Code: "PEK", City: "北京首都", Country: homeCountry},
			{Code: "PKX", City: "北京大兴", Country: homeCountry},
			{Code: "SHA", City: "上海虹桥", Country: homeCountry},
			{Code: "PVG", City: "上海浦东", Country: homeCountry},
			{Code: "CAN", City: "广州白云", Country: homeCountry},
			{Code: "SZX", City: "深圳宝安", Country: homeCountry},
			{Code: "CTU", City: "成都双流", Country: homeCountry},
			{Code: "CKG", City: "重庆江北", Country: homeCountry},
			{Code: "HGH", City: "杭州萧山", Country: homeCountry},
			{Code: "XIY", City: "西安咸阳", Country: homeCountry},
			{Code: "KMG", City: "昆明长水", Country: homeCountry},
			{Code: "SHE", City: "沈阳桃仙", Country: homeCountry},
			{Code: "HKG", City: "香港", Country: "中国香港"},
			{Code: "NRT", City: "东京成田", Country: "日本"},
			{Code: "ICN", City: "首尔仁川", Country: "韩国"},
			{Code: "CDG", City: "巴黎", Country: "法国"},
			{Code: "JFK", City: "纽约", Country: "美国"},
		},
		Hubs: []string{"PEK", "SHA", "PVG", "CAN", "SZX", "CTU"},
		Alternatives: map[string][]Route{
			"HGH-HKG": {{Origin: "SHA", Destination: "HKG"}, {Origin: "PVG", Destination: "HKG"}},
			"PKX-SHA": {{Origin: "PEK", Destination: "SHA"}},
			"HGH-NRT": {{Origin: "PVG", Destination: "NRT"}},
		},
		HomeCountry: homeCountry,
		Currency:    currency,
	}
}
