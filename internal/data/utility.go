package data

import "github.com/Styt0/airwave-aggregator/internal/model"

// utilityFrequencies lists utility DX stations, after dxinfocentre.com.
var utilityFrequencies = []model.FrequencyRecord{
	{
		ID: "util-1", Frequency: "4.583", Name: "German Navy",
		Description: "Naval communications, RTTY",
		Category:    model.CategoryUtility, Location: loc("Germany", 52.520, 13.405),
		LastActivity: minutesAgo(5), ActivityStatus: model.ActivityGreen,
		Mode: "RTTY", Source: "DX Info Centre",
	},
	{
		ID: "util-2", Frequency: "8.461", Name: "Russian Navy",
		Description: "Naval communications, CW",
		Category:    model.CategoryUtility, Location: loc("Russia", 59.934, 30.335),
		LastActivity: minutesAgo(9), ActivityStatus: model.ActivityYellow,
		Mode: "CW", Source: "DX Info Centre",
	},
	{
		ID: "util-3", Frequency: "5.696", Name: "US Coast Guard",
		Description: "Search and rescue communications",
		Category:    model.CategoryUtility, Location: loc("United States", 38.895, -77.037),
		LastActivity: minutesAgo(2), ActivityStatus: model.ActivityGreen,
		Mode: "USB", Source: "DX Info Centre",
	},
	{
		ID: "util-4", Frequency: "6.739", Name: "US Air Force HFGCS",
		Description: "Global Command System, encrypted voice and data",
		Category:    model.CategoryUtility, Location: loc("Multiple Sites", 38.895, -77.037),
		LastActivity: minutesAgo(4), ActivityStatus: model.ActivityGreen,
		Mode: "USB", Source: "DX Info Centre",
	},
	{
		ID: "util-5", Frequency: "11.175", Name: "US Air Force HFGCS",
		Description: "Primary HFGCS frequency, EAMs and SKYKING broadcasts",
		Category:    model.CategoryUtility, Location: loc("Multiple Sites", 38.895, -77.037),
		LastActivity: minutesAgo(1), ActivityStatus: model.ActivityGreen,
		Mode: "USB", Source: "DX Info Centre",
	},
	{
		ID: "util-6", Frequency: "4.724", Name: "NATO Air Defense",
		Description: "TACAMO, Looking Glass, NATO air defense",
		Category:    model.CategoryUtility, Location: loc("Multiple Sites", 50.850, 4.352),
		LastActivity: minutesAgo(7), ActivityStatus: model.ActivityYellow,
		Mode: "USB", Source: "DX Info Centre",
	},
	{
		ID: "util-7", Frequency: "10.000", Name: "WWV Time Signal",
		Description: "Standard time and frequency station",
		Category:    model.CategoryUtility, Location: loc("Fort Collins, CO, USA", 40.681, -105.042),
		LastActivity: minutesAgo(0), ActivityStatus: model.ActivityGreen,
		Mode: "AM", Source: "DX Info Centre", Schedule: "Continuous", Language: "English",
	},
	{
		ID: "util-8", Frequency: "7.850", Name: "North Korean Voice of Korea",
		Description: "International broadcasting service of DPRK",
		Category:    model.CategoryUtility, Location: loc("Pyongyang, North Korea", 39.019, 125.755),
		LastActivity: minutesAgo(28), ActivityStatus: model.ActivityOrange,
		Mode: "AM", Source: "DX Info Centre",
		Schedule: "1000-1050, 1300-1350, 1500-1550, 1900-1950 UTC", Language: "English",
	},
}
