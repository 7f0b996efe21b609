package dto

// ClassifyResponse is returned by GET /classify_query/.
type ClassifyResponse struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// AddressResponse is returned by GET /classify_query/process_address/.
type AddressResponse struct {
	Query            string `json:"query"`
	FormattedAddress string `json:"formatted_address"`
}

// CategoryResponse is returned by GET /classify_query/process_category/.
type CategoryResponse struct {
	Query             string `json:"query"`
	FormattedCategory string `json:"formatted_category"`
}

// QuantityResponse is returned by GET /classify_query/process_quantity/.
type QuantityResponse struct {
	Query             string `json:"query"`
	FormattedQuantity string `json:"formatted_quantity"`
}

// BrandResponse is returned by GET /classify_query/process_brand/.
type BrandResponse struct {
	Query          string `json:"query"`
	FormattedBrand string `json:"formatted_brand"`
}

// DistanceResponse is returned by GET /classify_query/process_distance/.
type DistanceResponse struct {
	Query             string `json:"query"`
	FormattedDistance string `json:"formatted_distance"`
}

// ReferenceResponse is returned by GET /classify_query/process_location_with_reference/.
type ReferenceResponse struct {
	Query              string `json:"query"`
	FormattedReference string `json:"formatted_reference"`
}

// ProcessResponse is returned by GET /process_query/.
type ProcessResponse struct {
	Query           string `json:"query"`
	Category        string `json:"category"`
	ProcessedOutput string `json:"processed_output"`
}
