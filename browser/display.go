package browser

// PageDisplayType selects the layout of a node page.
type PageDisplayType string

const (
	DisplayGeneral            PageDisplayType = "GENERAL"
	DisplayPlaceStatVar       PageDisplayType = "PLACE_STAT_VAR"
	DisplayPlaceWithWeather   PageDisplayType = "PLACE_WITH_WEATHER_INFO"
	DisplayBiologicalSpecimen PageDisplayType = "BIOLOGICAL_SPECIMEN"
)

// GetPageDisplayType derives the display mode. A selected statistical
// variable wins over any type.
func GetPageDisplayType(types []string, statVarID string) PageDisplayType {
	if statVarID != "" {
		return DisplayPlaceStatVar
	}
	for _, t := range types {
		if t == "City" {
			return DisplayPlaceWithWeather
		}
	}
	for _, t := range types {
		if t == "BiologicalSpecimen" {
			return DisplayBiologicalSpecimen
		}
	}
	return DisplayGeneral
}
