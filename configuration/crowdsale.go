package configuration

type CrowdsaleConfiguration struct {
	Address       string `yaml:"address"`
	StartDate     uint64 `yaml:"startDate"` //unix seconds
	OwnedToken    string `yaml:"ownedToken"`
	LockedAccount string `yaml:"lockedAccount"`
}

func DefCrowdsaleConfiguration() *CrowdsaleConfiguration {
	return &CrowdsaleConfiguration{
		StartDate: 1501681287,
	}
}
