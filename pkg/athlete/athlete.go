package athlete

type Athlete struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

type Settings struct {
	// Timezone is the IANA name of the athlete's home timezone. Week windows and
	// activity bucketing use the activity's local timestamps, so this is display-only.
	Timezone string
}
