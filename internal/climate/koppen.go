package climate

// Classification is a simplified Koppen climate class.
type Classification string

const (
	ClimatePolar              Classification = "polar"
	ClimateTundra             Classification = "tundra"
	ClimateSubarctic          Classification = "subarctic"
	ClimateOceanic            Classification = "oceanic"
	ClimateHumidContinental   Classification = "humid_continental"
	ClimateMediterranean      Classification = "mediterranean"
	ClimateSteppe             Classification = "steppe"
	ClimateDesert             Classification = "desert"
	ClimateArid               Classification = "arid"
	ClimateTropicalRainforest Classification = "tropical_rainforest"
	ClimateTropicalMonsoon    Classification = "tropical_monsoon"
	ClimateTropicalSavanna    Classification = "tropical_savanna"
	ClimateUnknown            Classification = "unknown"
)

// Classify maps the last computed weather at a tile to a simplified
// Koppen class. Cold climates split on -3C and -10C, temperate on 18C,
// with precipitation thresholds dividing each band.
func (e *Engine) Classify(x, y int) Classification {
	weather, ok := e.weather[[2]int{x, y}]
	if !ok {
		return ClimateUnknown
	}
	return classify(weather.Temperature, weather.Precipitation)
}

func classify(temperature, precipitation float64) Classification {
	switch {
	case temperature < -3:
		if precipitation > 50 {
			if temperature > -10 {
				return ClimateSubarctic
			}
			return ClimateTundra
		}
		return ClimatePolar
	case temperature < 18:
		if precipitation > 100 {
			if precipitation > 150 {
				return ClimateOceanic
			}
			return ClimateHumidContinental
		}
		if precipitation > 50 {
			return ClimateMediterranean
		}
		return ClimateSteppe
	default:
		if precipitation > 150 {
			if precipitation > 250 {
				return ClimateTropicalRainforest
			}
			return ClimateTropicalMonsoon
		}
		if precipitation > 50 {
			return ClimateTropicalSavanna
		}
		if precipitation < 25 {
			return ClimateDesert
		}
		return ClimateArid
	}
}

// Stats aggregates the current weather and water-cycle maps.
type Stats struct {
	Season             Season
	Month              int
	TotalPatterns      int
	AvgTemperature     float64
	AvgPrecipitation   float64
	AvgWindSpeed       float64
	AvgCloudCover      float64
	Distribution       map[Classification]int
	TotalEvaporation   float64
	TotalPrecipitation float64
	TotalRunoff        float64
}

// Statistics summarizes the last computed maps. With no weather
// computed yet only the season cursor is populated.
func (e *Engine) Statistics() Stats {
	stats := Stats{
		Season:        e.season,
		Month:         e.month,
		TotalPatterns: len(e.weather),
		Distribution:  make(map[Classification]int),
	}
	if len(e.weather) == 0 {
		return stats
	}

	for pos, w := range e.weather {
		stats.AvgTemperature += w.Temperature
		stats.AvgPrecipitation += w.Precipitation
		stats.AvgWindSpeed += w.WindSpeed
		stats.AvgCloudCover += w.CloudCover
		stats.Distribution[e.Classify(pos[0], pos[1])]++
	}
	n := float64(len(e.weather))
	stats.AvgTemperature /= n
	stats.AvgPrecipitation /= n
	stats.AvgWindSpeed /= n
	stats.AvgCloudCover /= n

	for _, c := range e.waterCycles {
		stats.TotalEvaporation += c.Evaporation
		stats.TotalPrecipitation += c.Precipitation
		stats.TotalRunoff += c.Runoff
	}
	return stats
}
