package helper

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"store_manager/config"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteEstimate struct {
	DurationMinutes int     `json:"durationMinutes"`
	DistanceKm      float64 `json:"distanceKm"`
}

const earthRadiusKm = 6371

// DistanceKm is the haversine great-circle distance, rounded to 1 decimal.
func DistanceKm(origin, destination Coordinates) float64 {
	dLat := toRad(destination.Lat - origin.Lat)
	dLng := toRad(destination.Lng - origin.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(origin.Lat))*math.Cos(toRad(destination.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	return math.Round(distance*10) / 10
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// FallbackEstimate assumes ~3 minutes per straight-line km.
func FallbackEstimate(origin, destination Coordinates) RouteEstimate {
	distance := DistanceKm(origin, destination)
	return RouteEstimate{
		DurationMinutes: int(math.Ceil(distance * 3)),
		DistanceKm:      distance,
	}
}

var routeClient = &http.Client{Timeout: 5 * time.Second}

type openRouteResponse struct {
	Routes []struct {
		Summary struct {
			Duration float64 `json:"duration"` // seconds
			Distance float64 `json:"distance"` // meters
		} `json:"summary"`
	} `json:"routes"`
}

// CalculateRoute asks OpenRouteService for a driving route. It never fails the
// caller: missing configuration, timeouts and bad responses all fall back to
// the flat haversine heuristic.
func CalculateRoute(origin, destination Coordinates) RouteEstimate {
	apiKey := config.Config("OPENROUTE_API_KEY")
	if apiKey == "" {
		return FallbackEstimate(origin, destination)
	}

	payload, err := json.Marshal(map[string][][]float64{
		"coordinates": {
			{origin.Lng, origin.Lat},
			{destination.Lng, destination.Lat},
		},
	})
	if err != nil {
		return FallbackEstimate(origin, destination)
	}

	req, err := http.NewRequest(
		http.MethodPost,
		"https://api.openrouteservice.org/v2/directions/driving-car",
		bytes.NewReader(payload),
	)
	if err != nil {
		return FallbackEstimate(origin, destination)
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := routeClient.Do(req)
	if err != nil {
		return FallbackEstimate(origin, destination)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackEstimate(origin, destination)
	}

	var data openRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || len(data.Routes) == 0 {
		return FallbackEstimate(origin, destination)
	}

	summary := data.Routes[0].Summary
	return RouteEstimate{
		DurationMinutes: int(math.Ceil(summary.Duration / 60)),
		DistanceKm:      math.Round(summary.Distance/1000*10) / 10,
	}
}
