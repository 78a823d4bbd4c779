package dto

import "github.com/roamly/roamly/internal/model"

// CityResponse represents a city in API responses.
type CityResponse struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ToCityListResponse converts City models to response DTOs.
func ToCityListResponse(cities []*model.City) []CityResponse {
	responses := make([]CityResponse, len(cities))
	for i, city := range cities {
		responses[i] = CityResponse{
			Name:    city.Name,
			Country: city.Country,
		}
	}
	return responses
}
