package models

import "fmt"

// AssetLevel classifies how sensitive a repository is. Values are ordered
// from least to most critical so levels can be compared directly.
type AssetLevel int

const (
	AssetLevelUnspecified            AssetLevel = 0
	AssetLevelPlayground             AssetLevel = 10
	AssetLevelResearchAndDevelopment AssetLevel = 20
	AssetLevelCorporate              AssetLevel = 30
	AssetLevelNonEssentialProduction AssetLevel = 40
	AssetLevelProduction             AssetLevel = 50
)

// AssetLevelProperty is the repository custom property holding the level.
const AssetLevelProperty = "repository-level"

var assetLevelNames = map[AssetLevel]string{
	AssetLevelUnspecified:            "Unspecified",
	AssetLevelPlayground:             "Playground",
	AssetLevelResearchAndDevelopment: "Research & Development",
	AssetLevelCorporate:              "Corporate",
	AssetLevelNonEssentialProduction: "Non-essential Production",
	AssetLevelProduction:             "Production",
}

func (l AssetLevel) String() string {
	if name, ok := assetLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("AssetLevel(%d)", int(l))
}

// ParseAssetLevel maps a custom property value to a level. Unknown values
// are reported with ok=false.
func ParseAssetLevel(value string) (AssetLevel, bool) {
	if value == "" {
		return AssetLevelUnspecified, true
	}
	for level, name := range assetLevelNames {
		if name == value {
			return level, true
		}
	}
	return AssetLevelUnspecified, false
}

func (l AssetLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *AssetLevel) UnmarshalText(text []byte) error {
	level, ok := ParseAssetLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown asset level %q", string(text))
	}
	*l = level
	return nil
}
