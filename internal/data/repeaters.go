package data

import "github.com/Styt0/airwave-aggregator/internal/model"

// belgianRepeaters lists Belgian voice and digital repeaters, after RepeaterBook.
var belgianRepeaters = []model.FrequencyRecord{
	{
		ID: "rb-1", Frequency: "145.600", Name: "ON0LG",
		Description: "Leuven - 430.125 to 439.9875 MHz, SSTV, RTTY, FAX",
		Category:    model.CategoryRepeaters, Location: loc("Leuven", 50.878, 4.700),
		LastActivity: minutesAgo(11), ActivityStatus: model.ActivityOrange,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-0.600", Tone: "103.5 Hz"},
	},
	{
		ID: "rb-2", Frequency: "145.625", Name: "ON0UR",
		Description: "Uccle - Brussels, BXL Uccle, Open 24/7",
		Category:    model.CategoryRepeaters, Location: loc("Brussels", 50.800, 4.350),
		LastActivity: minutesAgo(8), ActivityStatus: model.ActivityYellow,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-0.600", Tone: "79.7 Hz"},
	},
	{
		ID: "rb-3", Frequency: "145.650", Name: "ON0DK",
		Description: "Sint-Truiden - Linked to ON0DST",
		Category:    model.CategoryRepeaters, Location: loc("Sint-Truiden", 50.817, 5.183),
		LastActivity: minutesAgo(3), ActivityStatus: model.ActivityGreen,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-0.600", Tone: "71.9 Hz"},
	},
	{
		ID: "rb-4", Frequency: "145.675", Name: "ON0NA",
		Description: "Namur - Mont de la Radio",
		Category:    model.CategoryRepeaters, Location: loc("Namur", 50.467, 4.867),
		LastActivity: minutesAgo(22), ActivityStatus: model.ActivityOrange,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-0.600", Tone: "118.8 Hz"},
	},
	{
		ID: "rb-5", Frequency: "145.750", Name: "ON0TN",
		Description: "Tournai - CTCSS required for TX & RX",
		Category:    model.CategoryRepeaters, Location: loc("Tournai", 50.600, 3.383),
		LastActivity: minutesAgo(48), ActivityStatus: model.ActivityRed,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-0.600", Tone: "79.7 Hz"},
	},
	{
		ID: "rb-6", Frequency: "430.150", Name: "ON0OV",
		Description: "Oudenaarde - Vlaamse Ardenen - East Flanders",
		Category:    model.CategoryRepeaters, Location: loc("Oudenaarde", 50.850, 3.600),
		LastActivity: minutesAgo(9), ActivityStatus: model.ActivityYellow,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "+1.600", Tone: "79.7 Hz"},
	},
	{
		ID: "rb-7", Frequency: "430.350", Name: "ON0BR",
		Description: "Bruges - West Flanders, 24/7",
		Category:    model.CategoryRepeaters, Location: loc("Bruges", 51.210, 3.225),
		LastActivity: minutesAgo(2), ActivityStatus: model.ActivityGreen,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "+1.600", Tone: "79.7 Hz"},
	},
	{
		ID: "rb-8", Frequency: "439.000", Name: "ON0OS",
		Description: "Ostend - Echolink Node 103884",
		Category:    model.CategoryRepeaters, Location: loc("Ostend", 51.223, 2.917),
		LastActivity: nil, ActivityStatus: model.ActivityNone,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-7.600", Tone: "74.4 Hz"},
	},
	{
		ID: "rb-9", Frequency: "431.700", Name: "ON0AN",
		Description: "Antwerpen - DTMF control",
		Category:    model.CategoryRepeaters, Location: loc("Antwerp", 51.219, 4.402),
		LastActivity: minutesAgo(27), ActivityStatus: model.ActivityOrange,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "+1.600", Tone: "79.7 Hz"},
	},
	{
		ID: "rb-10", Frequency: "438.025", Name: "ON0LGE",
		Description: "Liege - APRS Gateway",
		Category:    model.CategoryRepeaters, Location: loc("Liege", 50.633, 5.567),
		LastActivity: minutesAgo(4), ActivityStatus: model.ActivityGreen,
		Mode: "FM", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-7.600", Tone: "74.4 Hz"},
	},
	{
		ID: "rb-11", Frequency: "439.4375", Name: "ON0CEA",
		Description: "Brussels DMR - CC1 - Amateur Digital Voice Network",
		Category:    model.CategoryDigital, Location: loc("Brussels", 50.850, 4.352),
		LastActivity: minutesAgo(5), ActivityStatus: model.ActivityGreen,
		Mode: "DMR", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-7.600", Tone: "CC1"},
	},
	{
		ID: "rb-12", Frequency: "439.5125", Name: "ON0DB",
		Description: "Destelbergen - DMR Digital and Analog Voice",
		Category:    model.CategoryDigital, Location: loc("Destelbergen", 51.067, 3.800),
		LastActivity: minutesAgo(10), ActivityStatus: model.ActivityYellow,
		Mode: "DMR", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-7.600", Tone: "CC1"},
	},
	{
		ID: "rb-13", Frequency: "438.8125", Name: "ON0RIG B",
		Description: "Goutroux D-STAR - Gateway ON0RIG G",
		Category:    model.CategoryDigital, Location: loc("Goutroux", 50.400, 4.383),
		LastActivity: minutesAgo(19), ActivityStatus: model.ActivityOrange,
		Mode: "D-STAR", Source: "RepeaterBook",
		Repeater: &model.RepeaterDetails{Offset: "-7.600"},
	},
}
