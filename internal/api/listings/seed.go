package listings

import "github.com/emergencytradesmen/tradesmen-api/internal/types"

// Trades is the directory's fixed trade catalogue.
var Trades = []types.Trade{
	{Slug: "plumber", Name: "Plumber", Icon: "💧"},
	{Slug: "electrician", Name: "Electrician", Icon: "⚡"},
	{Slug: "locksmith", Name: "Locksmith", Icon: "🔐"},
	{Slug: "gas-engineer", Name: "Gas Engineer", Icon: "🔥"},
	{Slug: "drain-specialist", Name: "Drain Specialist", Icon: "🚿"},
	{Slug: "glazier", Name: "Glazier", Icon: "🪟"},
}

// FallbackBusinesses is the static seed dataset served when the database
// has no verified listings for a bucket. Records are grouped by city and
// listed in their default (tie-break) order.
var FallbackBusinesses = []types.Business{
	// London
	{
		ID: "london-plumb-1", Name: "London Plumbing Services", Trade: "Plumber", City: "London",
		Rating: 4.9, ReviewCount: 132, Address: "14 Warren St, London",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 20 7100 1001",
		Website: "http://www.londonplumbers.co.uk", IsAvailableNow: true, Verified: true,
		Photos: []types.BusinessPhoto{
			{ID: "london-plumb-1-p1", URL: "https://images.emergencytradesmen.co.uk/london-plumb-1/van.jpg", IsPrimary: true, AltText: "Branded van outside a London terrace"},
		},
	},
	{
		ID: "london-plumb-2", Name: "Emergency Plumbers London", Trade: "Plumber", City: "London",
		Rating: 4.8, ReviewCount: 96, Address: "3 Camden High St, London",
		Hours: "Open · Closes 10 PM", IsOpen24Hours: false, Phone: "+44 20 7200 2002",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "london-plumb-3", Name: "Quick Fix Plumbing London", Trade: "Plumber", City: "London",
		Rating: 4.7, ReviewCount: 61, Address: "88 Brixton Rd, London",
		Hours: "Open · Closes 8 PM", IsOpen24Hours: false, Phone: "+44 20 7300 3003",
		Website: "http://www.quickfixlondon.co.uk", IsAvailableNow: false, Verified: true,
	},
	{
		ID: "london-lock-1", Name: "London Locksmith Experts", Trade: "Locksmith", City: "London",
		Rating: 4.9, ReviewCount: 87, Address: "22 Holborn Viaduct, London",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 20 7400 4004",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "london-lock-2", Name: "Rapid Response Locksmiths London", Trade: "Locksmith", City: "London",
		Rating: 4.6, ReviewCount: 43, Address: "5 Clapham Common South Side, London",
		Hours: "Open · Closes 9 PM", IsOpen24Hours: false, Phone: "+44 20 7500 5005",
		IsAvailableNow: false, Verified: true,
	},

	// Manchester
	{
		ID: "manchester-plumb-1", Name: "Manchester Plumbing Services", Trade: "Plumber", City: "Manchester",
		Rating: 4.9, ReviewCount: 74, Address: "41 Deansgate, Manchester",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 161 100 1001",
		Website: "http://www.manchesterplumbers.co.uk", IsAvailableNow: true, Verified: true,
	},
	{
		ID: "manchester-plumb-2", Name: "Manchester Heating & Plumbing", Trade: "Plumber", City: "Manchester",
		Rating: 4.8, ReviewCount: 58, Address: "9 Oldham Rd, Manchester",
		Hours: "Open · Closes 8 PM", IsOpen24Hours: false, Phone: "+44 161 200 2002",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "manchester-plumb-3", Name: "24/7 Plumbing Manchester", Trade: "Plumber", City: "Manchester",
		Rating: 4.7, ReviewCount: 39, Address: "120 Princess St, Manchester",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 161 300 3003",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "manchester-elec-1", Name: "Manchester Electrical Solutions", Trade: "Electrician", City: "Manchester",
		Rating: 4.8, ReviewCount: 66, Address: "7 Ancoats Grove, Manchester",
		Hours: "Open · Closes 6 PM", IsOpen24Hours: false, Phone: "+44 161 400 4004",
		Website: "http://www.manchesterelectricians.co.uk", IsAvailableNow: false, Verified: true,
	},
	{
		ID: "manchester-elec-2", Name: "Emergency Electricians Manchester", Trade: "Electrician", City: "Manchester",
		Rating: 4.9, ReviewCount: 51, Address: "33 Salford Quays, Manchester",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 161 500 5005",
		IsAvailableNow: true, Verified: true,
	},

	// Birmingham
	{
		ID: "birmingham-elec-1", Name: "Birmingham Electrical Services", Trade: "Electrician", City: "Birmingham",
		Rating: 4.8, ReviewCount: 49, Address: "18 Digbeth, Birmingham",
		Hours: "Open · Closes 7 PM", IsOpen24Hours: false, Phone: "+44 121 100 1001",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "birmingham-gas-1", Name: "Birmingham Gas & Heating", Trade: "Gas Engineer", City: "Birmingham",
		Rating: 4.9, ReviewCount: 72, Address: "2 Jewellery Quarter, Birmingham",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 121 200 2002",
		Website: "http://www.birminghamgas.co.uk", IsAvailableNow: true, Verified: true,
	},
	{
		ID: "birmingham-gas-2", Name: "Safe Gas Engineers Birmingham", Trade: "Gas Engineer", City: "Birmingham",
		Rating: 4.7, ReviewCount: 35, Address: "64 Moseley Rd, Birmingham",
		Hours: "Open · Closes 8 PM", IsOpen24Hours: false, Phone: "+44 121 300 3003",
		IsAvailableNow: false, Verified: true,
	},

	// Leeds
	{
		ID: "leeds-drain-1", Name: "Leeds Drain & Plumbing", Trade: "Drain Specialist", City: "Leeds",
		Rating: 4.8, ReviewCount: 44, Address: "10 Kirkstall Rd, Leeds",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 113 100 1001",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "leeds-drain-2", Name: "Rapid Drain Clearance Leeds", Trade: "Drain Specialist", City: "Leeds",
		Rating: 4.6, ReviewCount: 27, Address: "55 Roundhay Rd, Leeds",
		Hours: "Open · Closes 9 PM", IsOpen24Hours: false, Phone: "+44 113 200 2002",
		IsAvailableNow: false, Verified: true,
	},

	// Brighton & Hove
	{
		ID: "brighton-hove-glaz-1", Name: "Brighton Emergency Glaziers", Trade: "Glazier", City: "Brighton & Hove",
		Rating: 4.9, ReviewCount: 38, Address: "27 Western Rd, Brighton",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 1273 100100",
		Website: "http://www.brightonglaziers.co.uk", IsAvailableNow: true, Verified: true,
	},
	{
		ID: "brighton-hove-glaz-2", Name: "Hove Glass & Glazing", Trade: "Glazier", City: "Brighton & Hove",
		Rating: 4.7, ReviewCount: 21, Address: "4 Church Rd, Hove",
		Hours: "Open · Closes 5 PM", IsOpen24Hours: false, Phone: "+44 1273 200200",
		IsAvailableNow: false, Verified: true,
	},

	// Newcastle-upon-Tyne
	{
		ID: "newcastle-upon-tyne-plumb-1", Name: "Newcastle Plumbing Experts", Trade: "Plumber", City: "Newcastle-upon-Tyne",
		Rating: 4.8, ReviewCount: 47, Address: "12 Grainger St, Newcastle upon Tyne",
		Hours: "Open 24 hours", IsOpen24Hours: true, Phone: "+44 191 100 1001",
		IsAvailableNow: true, Verified: true,
	},
	{
		ID: "newcastle-upon-tyne-plumb-2", Name: "Tyneside Emergency Plumbers", Trade: "Plumber", City: "Newcastle-upon-Tyne",
		Rating: 4.7, ReviewCount: 33, Address: "78 Westgate Rd, Newcastle upon Tyne",
		Hours: "Open · Closes 10 PM", IsOpen24Hours: false, Phone: "+44 191 200 2002",
		IsAvailableNow: true, Verified: true,
	},
}

// NewFallbackStore builds the static store from the seed dataset.
func NewFallbackStore() *Store {
	return NewStore(FallbackBusinesses)
}
