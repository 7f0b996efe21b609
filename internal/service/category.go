package service

// Category is the intent assigned to a location query by the classifier.
type Category int

const (
	// CategoryUnrecognized marks classifier output that matches none of the known tags.
	CategoryUnrecognized Category = iota
	CategoryAddress
	CategoryCategory
	CategoryBrand
	CategoryQuantity
	CategoryDistance
	CategoryLocationWithReference
)

type categoryInfo struct {
	name string
	tag  string
	slug string
}

var categoryInfos = map[Category]categoryInfo{
	CategoryAddress:               {name: "Address", tag: "[Address]", slug: "address"},
	CategoryCategory:              {name: "Category", tag: "[Category]", slug: "category"},
	CategoryBrand:                 {name: "Brand", tag: "[Brand]", slug: "brand"},
	CategoryQuantity:              {name: "Quantity", tag: "[Quantity]", slug: "quantity"},
	CategoryDistance:              {name: "Distance", tag: "[Distance]", slug: "distance"},
	CategoryLocationWithReference: {name: "LocationWithReference", tag: "[Location with Reference]", slug: "location_with_reference"},
}

// Categories lists the known categories in classification-prompt order.
var Categories = []Category{
	CategoryAddress,
	CategoryCategory,
	CategoryBrand,
	CategoryQuantity,
	CategoryDistance,
	CategoryLocationWithReference,
}

// ParseCategory maps the classifier's trimmed reply onto a Category by exact tag match.
func ParseCategory(raw string) Category {
	for _, c := range Categories {
		if categoryInfos[c].tag == raw {
			return c
		}
	}
	return CategoryUnrecognized
}

// Known reports whether c is one of the six recognized categories.
func (c Category) Known() bool {
	_, ok := categoryInfos[c]
	return ok
}

// Tag returns the bracketed text the model uses for c.
func (c Category) Tag() string {
	return categoryInfos[c].tag
}

// Slug is a snake_case identifier used in metric and log labels.
func (c Category) Slug() string {
	if info, ok := categoryInfos[c]; ok {
		return info.slug
	}
	return "unrecognized"
}

func (c Category) String() string {
	if info, ok := categoryInfos[c]; ok {
		return info.name
	}
	return "Unrecognized"
}
