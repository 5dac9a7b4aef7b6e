package geo

import "github.com/emergencytradesmen/tradesmen-api/internal/types"

// ukCities holds the approximate centre points of every covered city.
// Slice order is load-bearing: nearest-city ties resolve to the first
// minimum encountered.
var ukCities = []types.City{
	{Name: "Manchester", Latitude: 53.4808, Longitude: -2.2426},
	{Name: "Birmingham", Latitude: 52.4862, Longitude: -1.8904},
	{Name: "Leeds", Latitude: 53.8008, Longitude: -1.5491},
	{Name: "Sheffield", Latitude: 53.3811, Longitude: -1.4701},
	{Name: "Nottingham", Latitude: 52.9548, Longitude: -1.1581},
	{Name: "Leicester", Latitude: 52.6369, Longitude: -1.1398},
	{Name: "Derby", Latitude: 52.9226, Longitude: -1.4746},
	{Name: "Coventry", Latitude: 52.4068, Longitude: -1.5197},
	{Name: "Wolverhampton", Latitude: 52.5869, Longitude: -2.1282},
	{Name: "Stoke-on-Trent", Latitude: 53.0027, Longitude: -2.1794},
	{Name: "Liverpool", Latitude: 53.4084, Longitude: -2.9916},
	{Name: "Preston", Latitude: 53.7632, Longitude: -2.7031},
	{Name: "Bolton", Latitude: 53.5768, Longitude: -2.4282},
	{Name: "Oldham", Latitude: 53.5444, Longitude: -2.1169},
	{Name: "Rochdale", Latitude: 53.6097, Longitude: -2.1561},
	{Name: "Bradford", Latitude: 53.7960, Longitude: -1.7594},
	{Name: "Huddersfield", Latitude: 53.6458, Longitude: -1.7850},
	{Name: "York", Latitude: 53.9600, Longitude: -1.0873},
	{Name: "Hull", Latitude: 53.7457, Longitude: -0.3367},
	{Name: "Doncaster", Latitude: 53.5228, Longitude: -1.1285},
	{Name: "Northampton", Latitude: 52.2405, Longitude: -0.9027},
	{Name: "Milton Keynes", Latitude: 52.0406, Longitude: -0.7594},
	{Name: "Luton", Latitude: 51.8787, Longitude: -0.4200},
	{Name: "Bedford", Latitude: 52.1363, Longitude: -0.4667},
	{Name: "Peterborough", Latitude: 52.5695, Longitude: -0.2405},
	{Name: "Cambridge", Latitude: 52.2053, Longitude: 0.1218},
	{Name: "Norwich", Latitude: 52.6309, Longitude: 1.2974},
	{Name: "Ipswich", Latitude: 52.0594, Longitude: 1.1556},
	{Name: "Reading", Latitude: 51.4543, Longitude: -0.9781},
	{Name: "Oxford", Latitude: 51.7520, Longitude: -1.2577},
	{Name: "Swindon", Latitude: 51.5558, Longitude: -1.7797},
	{Name: "Cheltenham", Latitude: 51.8994, Longitude: -2.0783},
	{Name: "Gloucester", Latitude: 51.8642, Longitude: -2.2382},
	{Name: "Worcester", Latitude: 52.1920, Longitude: -2.2200},
	{Name: "Hereford", Latitude: 52.0565, Longitude: -2.7160},
	{Name: "Shrewsbury", Latitude: 52.7081, Longitude: -2.7539},
	{Name: "Telford", Latitude: 52.6766, Longitude: -2.4469},
	{Name: "Cannock", Latitude: 52.6910, Longitude: -2.0280},
	{Name: "Tamworth", Latitude: 52.6336, Longitude: -1.6950},
	{Name: "Nuneaton", Latitude: 52.5230, Longitude: -1.4685},
	{Name: "Rugby", Latitude: 52.3708, Longitude: -1.2653},
	{Name: "Bath", Latitude: 51.3751, Longitude: -2.3599},
	{Name: "Brighton & Hove", Latitude: 50.8225, Longitude: -0.1372},
	{Name: "Bristol", Latitude: 51.4545, Longitude: -2.5879},
	{Name: "Canterbury", Latitude: 51.2802, Longitude: 1.0789},
	{Name: "Carlisle", Latitude: 54.8951, Longitude: -2.9382},
	{Name: "Chelmsford", Latitude: 51.7356, Longitude: 0.4685},
	{Name: "Chester", Latitude: 53.1906, Longitude: -2.8908},
	{Name: "Chichester", Latitude: 50.8365, Longitude: -0.7792},
	{Name: "Colchester", Latitude: 51.8917, Longitude: 0.9027},
	{Name: "Durham", Latitude: 54.7761, Longitude: -1.5733},
	{Name: "Ely", Latitude: 52.3984, Longitude: 0.2622},
	{Name: "Exeter", Latitude: 50.7184, Longitude: -3.5339},
	{Name: "Lancaster", Latitude: 54.0465, Longitude: -2.8007},
	{Name: "Lichfield", Latitude: 52.6817, Longitude: -1.8262},
	{Name: "Lincoln", Latitude: 53.2307, Longitude: -0.5406},
	{Name: "London", Latitude: 51.5074, Longitude: -0.1278},
	{Name: "Newcastle-upon-Tyne", Latitude: 54.9783, Longitude: -1.6178},
	{Name: "Plymouth", Latitude: 50.3755, Longitude: -4.1427},
	{Name: "Portsmouth", Latitude: 50.8198, Longitude: -1.0880},
	{Name: "Ripon", Latitude: 54.1380, Longitude: -1.5236},
	{Name: "Salford", Latitude: 53.4875, Longitude: -2.2901},
	{Name: "Salisbury", Latitude: 51.0693, Longitude: -1.7944},
	{Name: "Southampton", Latitude: 50.9097, Longitude: -1.4044},
	{Name: "Southend-on-Sea", Latitude: 51.5460, Longitude: 0.7075},
	{Name: "St Albans", Latitude: 51.7520, Longitude: -0.3360},
	{Name: "Sunderland", Latitude: 54.9069, Longitude: -1.3838},
	{Name: "Truro", Latitude: 50.2632, Longitude: -5.0510},
	{Name: "Wakefield", Latitude: 53.6833, Longitude: -1.4958},
	{Name: "Wells", Latitude: 51.2093, Longitude: -2.6470},
	{Name: "Winchester", Latitude: 51.0632, Longitude: -1.3080},
	{Name: "Westminster", Latitude: 51.4975, Longitude: -0.1357},
	{Name: "Warrington", Latitude: 53.3900, Longitude: -2.5970},
	{Name: "Wigan", Latitude: 53.5450, Longitude: -2.6325},
	{Name: "Middlesbrough", Latitude: 54.5742, Longitude: -1.2350},
	{Name: "Blackpool", Latitude: 53.8175, Longitude: -3.0357},
	{Name: "Barnsley", Latitude: 53.5526, Longitude: -1.4797},
}

// Cities returns the fixed city reference table.
func Cities() []types.City {
	return ukCities
}
