package footprint

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "data": [
	        {
	            "from": "2025-01-01T12:00Z",
	            "to": "2025-01-01T12:30Z",
	            "intensity": {
	                "forecast": 160,
	                "actual": 154,
	                "index": "moderate"
	            }
	        }
	    ]
	}
*/

// gridIntensityURL serves the current carbon intensity of the national
// electricity grid (GB), in g CO2 per kWh.
var gridIntensityURL = "https://api.carbonintensity.org.uk/intensity"

// GridIntensity fetches the current electricity grid carbon intensity and
// returns it as kg CO2e per kWh. Responses are cached on disk for the day.
//
// Use it with Factors.WithElectricity to report against the live grid rather
// than the yearly average; it is never called on the tracking path.
func GridIntensity() (Co2e, error) {
	var jobj any
	if err := jwget(daily(), gridIntensityURL, &jobj); err != nil {
		return Co2e{}, fmt.Errorf("error in wget %q: %w", "grid intensity", err)
	}

	// The actual reading can be null before publication, fall back to the forecast.
	for _, path := range []string{"$.data[0].intensity.actual", "$.data[0].intensity.forecast"} {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
		// by this call I keep the first one if any
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if val, ok := jval.(float64); ok && !math.IsNaN(val) {
			// grams per kWh on the wire, kilograms in the ledger.
			return Kg(val / 1000), nil
		}
	}
	return Co2e{}, fmt.Errorf("error parsing %q: no intensity value in response", "grid intensity")
}
