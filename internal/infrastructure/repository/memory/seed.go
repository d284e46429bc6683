package memory

import (
	"github.com/yldraft/olympic-draft/internal/domain/event"
)

const (
	EventIDSwim100Free   = "swimming-100m-freestyle"
	EventIDSwim200IM     = "swimming-200m-im"
	EventIDTrack100m     = "athletics-100m"
	EventIDTrackMarathon = "athletics-marathon"
	EventIDGymAllAround  = "gymnastics-all-around"
	EventIDBasketball    = "basketball"
	EventIDVolleyball    = "volleyball"
	EventIDRelay4x100    = "athletics-4x100m-relay"
)

func SeedEvents() []event.Event {
	return []event.Event{
		{ID: EventIDSwim100Free, Sport: "Swimming", Name: "100m Freestyle", Key: "swim-100-free", SortOrder: 1},
		{ID: EventIDSwim200IM, Sport: "Swimming", Name: "200m Individual Medley", Key: "swim-200-im", SortOrder: 2},
		{ID: EventIDTrack100m, Sport: "Athletics", Name: "100m Sprint", Key: "track-100m", SortOrder: 3},
		{ID: EventIDTrackMarathon, Sport: "Athletics", Name: "Marathon", Key: "track-marathon", SortOrder: 4},
		{ID: EventIDGymAllAround, Sport: "Gymnastics", Name: "Individual All-Around", Key: "gym-all-around", SortOrder: 5},
		{ID: EventIDRelay4x100, Sport: "Athletics", Name: "4x100m Relay", Key: "track-relay-4x100", IsTeamEvent: true, SortOrder: 6},
		{ID: EventIDBasketball, Sport: "Basketball", Name: "Basketball Tournament", Key: "basketball", IsTeamEvent: true, SortOrder: 7},
		{ID: EventIDVolleyball, Sport: "Volleyball", Name: "Volleyball Tournament", Key: "volleyball", IsTeamEvent: true, SortOrder: 8},
	}
}

func SeedEntries() []event.Entry {
	return []event.Entry{
		{EventID: EventIDSwim100Free, Key: "pan-zhanle", Name: "Pan Zhanle", CountryCode: "CN"},
		{EventID: EventIDSwim100Free, Key: "kyle-chalmers", Name: "Kyle Chalmers", CountryCode: "AU"},
		{EventID: EventIDSwim100Free, Key: "david-popovici", Name: "David Popovici", CountryCode: "RO"},
		{EventID: EventIDSwim100Free, Key: "jack-alexy", Name: "Jack Alexy", CountryCode: "US"},
		{EventID: EventIDSwim100Free, Key: "maxime-grousset", Name: "Maxime Grousset", CountryCode: "FR"},
		{EventID: EventIDSwim100Free, Key: "nandor-nemeth", Name: "Nandor Nemeth", CountryCode: "HU"},

		{EventID: EventIDSwim200IM, Key: "leon-marchand", Name: "Leon Marchand", CountryCode: "FR"},
		{EventID: EventIDSwim200IM, Key: "duncan-scott", Name: "Duncan Scott", CountryCode: "GB"},
		{EventID: EventIDSwim200IM, Key: "shaine-casas", Name: "Shaine Casas", CountryCode: "US"},
		{EventID: EventIDSwim200IM, Key: "hubert-kos", Name: "Hubert Kos", CountryCode: "HU"},
		{EventID: EventIDSwim200IM, Key: "daiya-seto", Name: "Daiya Seto", CountryCode: "JP"},

		{EventID: EventIDTrack100m, Key: "noah-lyles", Name: "Noah Lyles", CountryCode: "US"},
		{EventID: EventIDTrack100m, Key: "kishane-thompson", Name: "Kishane Thompson", CountryCode: "JM"},
		{EventID: EventIDTrack100m, Key: "fred-kerley", Name: "Fred Kerley", CountryCode: "US"},
		{EventID: EventIDTrack100m, Key: "akani-simbine", Name: "Akani Simbine", CountryCode: "ZA"},
		{EventID: EventIDTrack100m, Key: "letsile-tebogo", Name: "Letsile Tebogo", CountryCode: "BW"},
		{EventID: EventIDTrack100m, Key: "oblique-seville", Name: "Oblique Seville", CountryCode: "JM"},

		{EventID: EventIDTrackMarathon, Key: "eliud-kipchoge", Name: "Eliud Kipchoge", CountryCode: "KE"},
		{EventID: EventIDTrackMarathon, Key: "kenenisa-bekele", Name: "Kenenisa Bekele", CountryCode: "ET"},
		{EventID: EventIDTrackMarathon, Key: "tamirat-tola", Name: "Tamirat Tola", CountryCode: "ET"},
		{EventID: EventIDTrackMarathon, Key: "benson-kipruto", Name: "Benson Kipruto", CountryCode: "KE"},
		{EventID: EventIDTrackMarathon, Key: "conner-mantz", Name: "Conner Mantz", CountryCode: "US"},

		{EventID: EventIDGymAllAround, Key: "daiki-hashimoto", Name: "Daiki Hashimoto", CountryCode: "JP"},
		{EventID: EventIDGymAllAround, Key: "zhang-boheng", Name: "Zhang Boheng", CountryCode: "CN"},
		{EventID: EventIDGymAllAround, Key: "fred-richard", Name: "Fred Richard", CountryCode: "US"},
		{EventID: EventIDGymAllAround, Key: "illia-kovtun", Name: "Illia Kovtun", CountryCode: "UA"},
		{EventID: EventIDGymAllAround, Key: "jake-jarman", Name: "Jake Jarman", CountryCode: "GB"},

		{EventID: EventIDRelay4x100, Key: "relay-usa", Name: "United States", CountryCode: "US", IsTeam: true},
		{EventID: EventIDRelay4x100, Key: "relay-jam", Name: "Jamaica", CountryCode: "JM", IsTeam: true},
		{EventID: EventIDRelay4x100, Key: "relay-gbr", Name: "Great Britain", CountryCode: "GB", IsTeam: true},
		{EventID: EventIDRelay4x100, Key: "relay-can", Name: "Canada", CountryCode: "CA", IsTeam: true},
		{EventID: EventIDRelay4x100, Key: "relay-ita", Name: "Italy", CountryCode: "IT", IsTeam: true},

		{EventID: EventIDBasketball, Key: "bb-usa", Name: "United States", CountryCode: "US", IsTeam: true},
		{EventID: EventIDBasketball, Key: "bb-fra", Name: "France", CountryCode: "FR", IsTeam: true},
		{EventID: EventIDBasketball, Key: "bb-srb", Name: "Serbia", CountryCode: "RS", IsTeam: true},
		{EventID: EventIDBasketball, Key: "bb-ger", Name: "Germany", CountryCode: "DE", IsTeam: true},
		{EventID: EventIDBasketball, Key: "bb-can", Name: "Canada", CountryCode: "CA", IsTeam: true},

		{EventID: EventIDVolleyball, Key: "vb-pol", Name: "Poland", CountryCode: "PL", IsTeam: true},
		{EventID: EventIDVolleyball, Key: "vb-fra", Name: "France", CountryCode: "FR", IsTeam: true},
		{EventID: EventIDVolleyball, Key: "vb-ita", Name: "Italy", CountryCode: "IT", IsTeam: true},
		{EventID: EventIDVolleyball, Key: "vb-jpn", Name: "Japan", CountryCode: "JP", IsTeam: true},
		{EventID: EventIDVolleyball, Key: "vb-bra", Name: "Brazil", CountryCode: "BR", IsTeam: true},
	}
}
